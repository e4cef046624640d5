package handlers_test

import (
	stderrors "errors"
	"fmt"
	"iter"
	"net/http"
	"testing"
	"werkstatt/domain"
	"werkstatt/errors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seqOf(err error, chunks ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, c := range chunks {
			if !yield(c, nil) {
				return
			}
		}
		if err != nil {
			yield("", err)
		}
	}
}

func TestChat_RequestErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantBody string
	}{
		{"missing messages", `{}`, errors.ErrEmptyMessages, http.StatusBadRequest, `{"error":"Invalid request: messages array is required"}`},
		{"missing api key", `{"messages":[{"role":"user","content":"Hallo"}]}`, errors.ErrAssistantUnavailable, http.StatusInternalServerError, `{"error":"API key not configured"}`},
		{"blank content", `{"messages":[{"role":"user","content":" "}]}`, errors.ErrEmptyMessageContent, http.StatusBadRequest, `{"error":"No message content provided"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAPI(t)
			a.assistant.EXPECT().Stream(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := a.do(t, http.MethodPost, "/api/chat", tt.body, "")

			require.Equal(t, tt.wantCode, w.Code)
			require.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestChat_UndecodableBodyCountsAsMissingMessages(t *testing.T) {
	a := newAPI(t)
	a.assistant.EXPECT().Stream(gomock.Any(), gomock.Nil()).Return(nil, errors.ErrEmptyMessages)

	w := a.do(t, http.MethodPost, "/api/chat", `{"messages":"nope"}`, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_Streams(t *testing.T) {
	req := require.New(t)
	a := newAPI(t)
	messages := []domain.ChatMessage{{Role: domain.RoleUser, Content: "Wie bohre ich in Fliesen?"}}
	a.assistant.EXPECT().Stream(gomock.Any(), messages).Return(seqOf(nil, "Mit ", "", "Glasbohrer."), nil)

	w := a.do(t, http.MethodPost, "/api/chat", map[string]any{"messages": messages}, "")

	req.Equal(http.StatusOK, w.Code)
	req.Equal("text/event-stream", w.Header().Get("Content-Type"))
	req.Equal("no-cache", w.Header().Get("Cache-Control"))
	req.Equal("keep-alive", w.Header().Get("Connection"))
	req.Equal(
		`data: {"chunk":"Mit ","fullText":"Mit "}`+"\n\n"+
			`data: {"chunk":"Glasbohrer.","fullText":"Mit Glasbohrer."}`+"\n\n"+
			"data: [DONE]\n\n",
		w.Body.String())
}

func TestChat_ModelFailureAfterStart(t *testing.T) {
	req := require.New(t)
	a := newAPI(t)
	a.assistant.EXPECT().Stream(gomock.Any(), gomock.Any()).Return(seqOf(stderrors.New("quota exceeded"), "Mit "), nil)

	w := a.do(t, http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":"Hallo"}]}`, "")

	req.Equal(http.StatusOK, w.Code)
	req.Equal(
		`data: {"chunk":"Mit ","fullText":"Mit "}`+"\n\n"+
			fmt.Sprintf(`data: {"error":"AI processing failed","details":%q}`, "quota exceeded")+"\n\n",
		w.Body.String())
	req.NotContains(w.Body.String(), "[DONE]")
}
