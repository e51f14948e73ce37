package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockdb "github.com/King0lightai/JT-Power-Tools-sub005/db/mock"
	"github.com/King0lightai/JT-Power-Tools-sub005/notetext"
	mocktmp "github.com/King0lightai/JT-Power-Tools-sub005/tmpstore/mock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newStatelessService builds a service whose store and cache must not be touched.
func newStatelessService(t *testing.T) *Service {
	ctrl := gomock.NewController(t)
	return newTestService(t, mockdb.NewMockStore(ctrl), mocktmp.NewMockStore(ctrl))
}

func TestParseMarkup(t *testing.T) {
	service := newStatelessService(t)

	recorder := serveJSON(t, service, http.MethodPost, MarkupParseURL, gin.H{
		"markup": "- [x] **a**\n  - b\n\n7. c",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	res := decodeBody[BlocksResponse](t, recorder)
	require.Equal(t, []notetext.Block{
		{Kind: notetext.KindCheckbox, Checked: true, Content: "<strong>a</strong>"},
		{Kind: notetext.KindBullet, Indent: 1, Content: "b"},
		{Kind: notetext.KindParagraph, Content: notetext.EmptyLine},
		{Kind: notetext.KindNumbered, Number: "7", Content: "c"},
	}, res.Blocks)
}

func TestParseMarkup_Empty(t *testing.T) {
	service := newStatelessService(t)

	recorder := serveJSON(t, service, http.MethodPost, MarkupParseURL, gin.H{})

	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"blocks":[]}`, recorder.Body.String())
}

func TestParseMarkup_TooLarge(t *testing.T) {
	service := newStatelessService(t)

	recorder := serveJSON(t, service, http.MethodPost, MarkupParseURL, gin.H{
		"markup": strings.Repeat("a", testConfig.MaxNoteBytes+1),
	})

	requireErrorResponse(t, recorder, http.StatusRequestEntityTooLarge, ErrNoteTooLarge, "markup")
}

func TestParseMarkup_InvalidJSON(t *testing.T) {
	service := newStatelessService(t)

	recorder := serveJSON(t, service, http.MethodPost, MarkupParseURL, "not an object")

	requireErrorResponse(t, recorder, http.StatusBadRequest, ErrInvalidParams, "")
}

func TestSerializeMarkup(t *testing.T) {
	testCases := []struct {
		name          string
		body          gin.H
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{
				"blocks": []notetext.Block{
					{Kind: notetext.KindBullet, Content: `<span class="bullet-dot">&bull;</span> <em>x</em>`},
					{Kind: notetext.KindCheckbox, Content: "done", Checked: true},
					{Kind: notetext.KindTable, Header: []string{"Name", "Age"}, Rows: [][]string{{"Al", "3"}}},
				},
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				res := decodeBody[MarkupResponse](t, recorder)
				require.Equal(t, "- _x_\n- [x] done\n| Name | Age |\n| ---- | --- |\n| Al | 3 |", res.Markup)
			},
		},
		{
			name: "MissingBlocks",
			body: gin.H{},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				requireErrorResponse(t, recorder, http.StatusBadRequest, ErrInvalidParams, "blocks")
			},
		},
		{
			name: "UnknownKind",
			body: gin.H{
				"blocks": []gin.H{{"kind": "heading", "content": "x"}},
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				requireErrorResponse(t, recorder, http.StatusBadRequest, ErrInvalidBlocks, "blocks[0].kind")
			},
		},
		{
			name: "TableWithoutHeader",
			body: gin.H{
				"blocks": []gin.H{{"kind": "paragraph"}, {"kind": "table"}},
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				requireErrorResponse(t, recorder, http.StatusBadRequest, ErrInvalidBlocks, "blocks[1].header")
			},
		},
		{
			name: "NegativeIndent",
			body: gin.H{
				"blocks": []gin.H{{"kind": "bullet", "indent": -1}},
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				requireErrorResponse(t, recorder, http.StatusBadRequest, ErrInvalidBlocks, "blocks[0].indent")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := newStatelessService(t)
			recorder := serveJSON(t, service, http.MethodPost, MarkupSerializeURL, tc.body)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestPreviewMarkup(t *testing.T) {
	service := newStatelessService(t)

	recorder := serveJSON(t, service, http.MethodPost, MarkupPreviewURL, gin.H{
		"markup": "- **a**\n- [ ] todo\n[x](javascript:alert(1))\n<script>alert(1)</script>",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	res := decodeBody[PreviewResponse](t, recorder)

	require.False(t, res.Cached)
	require.Contains(t, res.HTML, `<span class="bullet-dot">`)
	require.Contains(t, res.HTML, `<span class="note-checkbox">`)
	require.Contains(t, res.HTML, "<strong>a</strong>")
	require.Contains(t, res.HTML, `href="#"`)
	require.Contains(t, res.HTML, "&lt;script&gt;")
	require.NotContains(t, res.HTML, "javascript")
	require.NotContains(t, res.HTML, "<script>")
}

func TestDetectFormats(t *testing.T) {
	testCases := []struct {
		name          string
		body          gin.H
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Cursor",
			body: gin.H{"markup": "~~a __b__ c~~", "selection_start": 6, "selection_end": 6},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.JSONEq(t, `{
					"bold":false,"italic":false,"underline":true,"strikethrough":true,
					"color":null,"justify_center":false,"justify_right":false
				}`, recorder.Body.String())
			},
		},
		{
			name: "ColorAndJustify",
			body: gin.H{"markup": "-:- [!color:red]text", "selection_start": 18, "selection_end": 20},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				res := decodeBody[FormatsResponse](t, recorder)
				require.NotNil(t, res.Color)
				require.Equal(t, "red", *res.Color)
				require.True(t, res.JustifyCenter)
			},
		},
		{
			name: "MissingSelection",
			body: gin.H{"markup": "x"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				requireErrorResponse(t, recorder, http.StatusBadRequest, ErrInvalidParams, "selection_start")
			},
		},
		{
			name: "TooLarge",
			body: gin.H{
				"markup":          strings.Repeat("*", testConfig.MaxNoteBytes+1),
				"selection_start": 0,
				"selection_end":   0,
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				requireErrorResponse(t, recorder, http.StatusRequestEntityTooLarge, ErrNoteTooLarge, "markup")
			},
		},
		{
			name: "NegativeSelection",
			body: gin.H{"markup": "x", "selection_start": -1, "selection_end": 0},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				requireErrorResponse(t, recorder, http.StatusBadRequest, ErrInvalidParams, "selection_start")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := newStatelessService(t)
			recorder := serveJSON(t, service, http.MethodPost, MarkupFormatsURL, tc.body)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestLintMarkup(t *testing.T) {
	service := newStatelessService(t)

	recorder := serveJSON(t, service, http.MethodPost, MarkupLintURL, gin.H{
		"markup": "**open\n| lonely |",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"warnings":[
		{"issue":"unclosed_delimiter","line":1,"column":0,"description":"\"**\" has no closing partner and is shown as is"},
		{"issue":"lone_table_row","line":2,"column":0,"description":"a table needs at least a header and a separator row; this line is dropped by the editor"}
	]}`, recorder.Body.String())
}

func TestLintMarkup_Clean(t *testing.T) {
	service := newStatelessService(t)

	recorder := serveJSON(t, service, http.MethodPost, MarkupLintURL, gin.H{"markup": "- **ok**"})

	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"warnings":[]}`, recorder.Body.String())
}
