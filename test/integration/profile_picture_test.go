package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"regexp"
	"strings"
	"testing"
)

var pictureKeyPattern = regexp.MustCompile(`^profile-pictures/[0-9a-fA-F-]{36}/[0-9a-fA-F-]{36}\.(jpg|png)$`)

func TestProfilePictureUploadAndURL(t *testing.T) {
	store := newObjectStoreEnv(t)
	env := newServerEnvWithOptions(t, serverOptions{storage: store.storage})
	token := env.login(t, adminUsername, adminPassword)

	resp, raw := env.uploadPicture(t, token, "me.jpg", jpegBytes(), "image/jpeg")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload: status %d body %s", resp.StatusCode, raw)
	}
	var me struct {
		ProfilePicture string `json:"profile_picture"`
	}
	if err := json.Unmarshal(raw, &me); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if !pictureKeyPattern.MatchString(me.ProfilePicture) {
		t.Fatalf("unexpected object key format: %q", me.ProfilePicture)
	}
	if !store.objectExists(t, me.ProfilePicture) {
		t.Fatalf("expected stored object %q", me.ProfilePicture)
	}

	resp, raw = env.do(t, http.MethodGet, "/api/v1/auth/me/profile-picture", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("picture url: status %d body %s", resp.StatusCode, raw)
	}
	var link struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &link); err != nil {
		t.Fatalf("decode url: %v", err)
	}
	if !strings.Contains(link.URL, me.ProfilePicture) {
		t.Fatalf("expected presigned url for %q, got %q", me.ProfilePicture, link.URL)
	}
}

func TestProfilePictureReplaceRemovesPrevious(t *testing.T) {
	store := newObjectStoreEnv(t)
	env := newServerEnvWithOptions(t, serverOptions{storage: store.storage})
	token := env.login(t, adminUsername, adminPassword)

	resp, raw := env.uploadPicture(t, token, "first.jpg", jpegBytes(), "image/jpeg")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first upload: status %d body %s", resp.StatusCode, raw)
	}
	var first struct {
		ProfilePicture string `json:"profile_picture"`
	}
	if err := json.Unmarshal(raw, &first); err != nil {
		t.Fatalf("decode user: %v", err)
	}

	resp, raw = env.uploadPicture(t, token, "second.png", pngBytes(), "image/png")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("second upload: status %d body %s", resp.StatusCode, raw)
	}
	var second struct {
		ProfilePicture string `json:"profile_picture"`
	}
	if err := json.Unmarshal(raw, &second); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if second.ProfilePicture == first.ProfilePicture {
		t.Fatalf("expected a fresh object key, got %q twice", first.ProfilePicture)
	}
	if !strings.HasSuffix(second.ProfilePicture, ".png") {
		t.Fatalf("expected png suffix, got %q", second.ProfilePicture)
	}
	if !store.objectExists(t, second.ProfilePicture) {
		t.Fatalf("expected new object %q", second.ProfilePicture)
	}
	if store.objectExists(t, first.ProfilePicture) {
		t.Fatalf("expected previous object %q removed", first.ProfilePicture)
	}
}

func TestProfilePictureRejectsBadUploads(t *testing.T) {
	store := newObjectStoreEnv(t)
	env := newServerEnvWithOptions(t, serverOptions{storage: store.storage})
	token := env.login(t, adminUsername, adminPassword)

	t.Run("unsupported content type", func(t *testing.T) {
		resp, raw := env.uploadPicture(t, token, "doc.pdf", []byte("%PDF-1.7"), "application/pdf")
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body %s", resp.StatusCode, raw)
		}
	})

	t.Run("oversize file", func(t *testing.T) {
		oversize := bytes.Repeat([]byte{0xFF}, 6*1024*1024)
		resp, raw := env.uploadPicture(t, token, "big.jpg", oversize, "image/jpeg")
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body %s", resp.StatusCode, raw)
		}
	})

	t.Run("missing part", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPut, env.server.URL+"/api/v1/auth/me/profile-picture", strings.NewReader("plain"))
		if err != nil {
			t.Fatalf("build request: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "text/plain")
		resp, err := env.client.Do(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})
}

func (e *serverEnv) uploadPicture(t *testing.T, token, filename string, content []byte, contentType string) (*http.Response, []byte) {
	t.Helper()

	payload := &bytes.Buffer{}
	writer := multipart.NewWriter(payload)
	partHeaders := make(textproto.MIMEHeader)
	partHeaders.Set("Content-Disposition", fmt.Sprintf(`form-data; name="picture"; filename="%s"`, filename))
	partHeaders.Set("Content-Type", contentType)
	part, err := writer.CreatePart(partHeaders)
	if err != nil {
		t.Fatalf("create multipart part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write multipart part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPut, e.server.URL+"/api/v1/auth/me/profile-picture", payload)
	if err != nil {
		t.Fatalf("build upload request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := e.client.Do(req)
	if err != nil {
		t.Fatalf("upload request: %v", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read upload response: %v", err)
	}
	return resp, raw
}

func jpegBytes() []byte {
	return append([]byte{
		0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46,
		0x49, 0x46, 0x00, 0x01, 0x01, 0x00, 0x00, 0x01,
	}, bytes.Repeat([]byte{0x11}, 512)...)
}

func pngBytes() []byte {
	return append([]byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
		0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	}, bytes.Repeat([]byte{0x22}, 512)...)
}
