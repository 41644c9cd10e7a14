package snapshot

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"requisitionprint/internal/domain"
)

func TestPreviewURL_CarriesSettingsExplicitly(t *testing.T) {
	p := domain.PreviewPayload{
		Form: domain.RequisitionForm{
			Number: "RQ-17",
			Items:  []domain.LineItem{{LineNumber: 1, Description: "Gloves & masks", Quantity: 2, UnitPrice: 3.5}},
		},
		Settings: &domain.PaginationSettings{ItemsPerPage: 8, AutoSize: false},
	}

	raw, err := PreviewURL("http://127.0.0.1:8080/requisitions/preview", p)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/requisitions/preview", u.Path)

	got, err := Decode(u.Query().Get(Param))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantErr      bool
		wantItems    int
		wantSettings bool
	}{
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace", raw: "   ", wantErr: true},
		{name: "not json", raw: "{form:", wantErr: true},
		{name: "wrong type", raw: `{"form":{"items":"x"}}`, wantErr: true},
		{name: "form without settings", raw: `{"form":{"items":[{"description":"a"},{"description":"b"}]}}`, wantItems: 2},
		{name: "form with settings", raw: `{"form":{"items":[]},"settings":{"itemsPerPage":4,"autoSize":false}}`, wantSettings: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrMalformedPayload)
				assert.Equal(t, domain.PreviewPayload{}, p)
				return
			}
			require.NoError(t, err)
			assert.Len(t, p.Form.Items, tt.wantItems)
			assert.Equal(t, tt.wantSettings, p.Settings != nil)
		})
	}
}

func TestPreviewURL_BadBase(t *testing.T) {
	_, err := PreviewURL("://nope", domain.PreviewPayload{})
	require.Error(t, err)
}
