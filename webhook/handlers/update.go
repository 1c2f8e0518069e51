package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os/exec"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const signatureHeader = "X-Hub-Signature-256"

// UpdateHandler receives GitHub push events and runs the update script for
// pushes to the main branch.
type UpdateHandler struct {
	secret []byte
	script string

	// Replaceable for the tests.
	runScript func(jobId string, script string)
}

type UpdateHandlerDependencies struct {
	Secret string
	Script string
}

// NewUpdateHandler creates a new instance of the update handler.
func NewUpdateHandler(deps *UpdateHandlerDependencies) *UpdateHandler {
	if deps.Secret == "" {
		log.Println("No webhook secret configured, signature verification is disabled.")
	}

	return &UpdateHandler{
		secret:    []byte(deps.Secret),
		script:    deps.Script,
		runScript: runUpdateScript,
	}
}

// Payload fields we care about from the push event.
type pushEvent struct {
	Ref string `json:"ref"`
}

// HandleUpdate verifies the webhook signature and starts the update script
// in the background for pushes to main.
func (h *UpdateHandler) HandleUpdate(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "couldn't read the body"})
		return
	}

	if !h.validSignature(body, c.GetHeader(signatureHeader)) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var event pushEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	// Only the main branch triggers a deploy.
	if event.Ref != "refs/heads/main" {
		c.JSON(http.StatusOK, gin.H{"result": "ignored", "ref": event.Ref})
		return
	}

	jobId := uuid.NewString()
	go h.runScript(jobId, h.script)

	c.JSON(http.StatusAccepted, gin.H{"result": "update started", "jobId": jobId})
}

// validSignature checks the HMAC SHA256 signature GitHub sends.
// An empty secret disables verification entirely.
func (h *UpdateHandler) validSignature(body []byte, signature string) bool {
	if len(h.secret) == 0 {
		return true
	}
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// Run the update script, logging the output under the job id.
func runUpdateScript(jobId string, script string) {
	log.Printf("[%s] Running the update script %s", jobId, script)

	output, err := exec.Command("/bin/sh", script).CombinedOutput()
	if err != nil {
		log.Printf("[%s] Update script failed: %v\n%s", jobId, err, output)
		return
	}

	log.Printf("[%s] Update finished.\n%s", jobId, output)
}
