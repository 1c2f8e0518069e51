package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testSecret = "hook-secret"

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func setupTestHandler() (*UpdateHandler, *gin.Engine, *sync.WaitGroup, *[]string) {
	gin.SetMode(gin.TestMode)

	handler := NewUpdateHandler(&UpdateHandlerDependencies{
		Secret: testSecret,
		Script: "./update.sh",
	})

	var wg sync.WaitGroup
	var runs []string
	handler.runScript = func(jobId string, script string) {
		defer wg.Done()
		runs = append(runs, script)
	}

	engine := gin.New()
	engine.POST("/update", handler.HandleUpdate)

	return handler, engine, &wg, &runs
}

func postUpdate(engine *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/update", bytes.NewReader(body))
	if signature != "" {
		request.Header.Set(signatureHeader, signature)
	}

	engine.ServeHTTP(recorder, request)
	return recorder
}

func TestHandleUpdateMainBranch(t *testing.T) {
	_, engine, wg, runs := setupTestHandler()

	body := []byte(`{"ref":"refs/heads/main"}`)

	wg.Add(1)
	recorder := postUpdate(engine, body, signBody(body))
	wg.Wait()

	assert.Equal(t, http.StatusAccepted, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "jobId")
	assert.Equal(t, []string{"./update.sh"}, *runs)
}

func TestHandleUpdateOtherBranch(t *testing.T) {
	_, engine, _, runs := setupTestHandler()

	body := []byte(`{"ref":"refs/heads/feature"}`)

	recorder := postUpdate(engine, body, signBody(body))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "ignored")
	assert.Empty(t, *runs)
}

func TestHandleUpdateBadSignature(t *testing.T) {
	_, engine, _, runs := setupTestHandler()

	body := []byte(`{"ref":"refs/heads/main"}`)

	tests := []struct {
		name      string
		signature string
	}{
		{name: "missingSignature", signature: ""},
		{name: "wrongSignature", signature: "sha256=" + hex.EncodeToString(make([]byte, 32))},
		{name: "tamperedBody", signature: signBody([]byte(`{"ref":"refs/heads/other"}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postUpdate(engine, body, tt.signature)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Empty(t, *runs)
		})
	}
}

func TestHandleUpdateInvalidPayload(t *testing.T) {
	_, engine, _, _ := setupTestHandler()

	body := []byte(`not json`)

	recorder := postUpdate(engine, body, signBody(body))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestValidSignatureEmptySecret(t *testing.T) {
	handler := NewUpdateHandler(&UpdateHandlerDependencies{Secret: "", Script: "./update.sh"})

	body := []byte(`{"ref":"refs/heads/main"}`)

	// No secret configured disables verification.
	assert.True(t, handler.validSignature(body, ""))
	assert.True(t, handler.validSignature(body, "sha256=whatever"))
}
