package pdfinspect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/primitives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nPagePDF(t *testing.T, n int) []byte {
	t.Helper()
	pages := make(map[string]*primitives.PDFPage, n)
	for i := 1; i <= n; i++ {
		pages[strconv.Itoa(i)] = &primitives.PDFPage{
			Content: &primitives.Content{
				TextBoxes: []*primitives.TextBox{{
					Value:    fmt.Sprintf("Requisition page %d", i),
					Position: [2]float64{100, 100},
					Font:     &primitives.FormFont{Name: "Helvetica", Size: 12},
				}},
			},
		}
	}
	desc, err := json.Marshal(primitives.PDF{Pages: pages})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, api.Create(nil, bytes.NewReader(desc), &out, nil))
	return out.Bytes()
}

func TestInspector_PageCount(t *testing.T) {
	insp := NewInspector()
	for _, n := range []int{1, 3} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			info, err := insp.Inspect(nPagePDF(t, n))
			require.NoError(t, err)
			assert.Equal(t, n, info.Pages)
		})
	}
}

func TestInspector_RejectsCorrupt(t *testing.T) {
	insp := NewInspector()

	_, err := insp.Inspect(nil)
	assert.Error(t, err)

	_, err = insp.Inspect([]byte("%PDF-1.7\nnot really a pdf"))
	assert.Error(t, err)
}
