package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/subrinSheikh/Medical-Language-System/internal/message"
)

func TestDecodeRequestJSON(t *testing.T) {
	body, _ := json.Marshal(message.Request{
		Mode:       message.ModeTutor,
		Language:   "Hindi",
		TutorQuery: "What is a fever?",
	})
	r := httptest.NewRequest("POST", "/interact", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	req, err := decodeRequest(r)
	if err != nil {
		t.Fatalf("decodeRequest: %v", err)
	}
	if req.Mode != message.ModeTutor || req.Language != "Hindi" || req.TutorQuery != "What is a fever?" {
		t.Errorf("decoded request = %+v", req)
	}
}

func TestDecodeRequestURLEncodedForm(t *testing.T) {
	form := url.Values{
		"mode":       {"translator"},
		"language":   {"Bengali"},
		"text_input": {"I have a headache"},
	}
	r := httptest.NewRequest("POST", "/interact", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	req, err := decodeRequest(r)
	if err != nil {
		t.Fatalf("decodeRequest: %v", err)
	}
	if req.Mode != message.ModeTranslator || req.TextInput != "I have a headache" {
		t.Errorf("decoded request = %+v", req)
	}
	if req.HasAudio() {
		t.Error("urlencoded form must not carry audio")
	}
}

func TestDecodeRequestMultipartWithAudio(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("mode", "translator")
	_ = mw.WriteField("language", "Urdu")
	part, _ := mw.CreateFormFile("audio", "input.wav")
	_, _ = part.Write([]byte("riff-bytes"))
	_ = mw.Close()

	r := httptest.NewRequest("POST", "/interact", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	req, err := decodeRequest(r)
	if err != nil {
		t.Fatalf("decodeRequest: %v", err)
	}
	if !req.HasAudio() || string(req.Audio) != "riff-bytes" {
		t.Errorf("audio = %q", req.Audio)
	}
	if req.Language != "Urdu" {
		t.Errorf("language = %q", req.Language)
	}
}

func TestDecodeRequestMultipartWithoutAudio(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("mode", "silent_emergency")
	_ = mw.WriteField("emergency_type", "stroke")
	_ = mw.Close()

	r := httptest.NewRequest("POST", "/interact", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	req, err := decodeRequest(r)
	if err != nil {
		t.Fatalf("decodeRequest: %v", err)
	}
	if req.Mode != message.ModeSilentEmergency || req.EmergencyType != "stroke" {
		t.Errorf("decoded request = %+v", req)
	}
	if req.HasAudio() {
		t.Error("missing file part must not be treated as audio")
	}
}
