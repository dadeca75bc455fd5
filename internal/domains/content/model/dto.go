package model

import (
	"bytes"
	"encoding/json"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// UpdateSectionRequest replaces one section with Data.
type UpdateSectionRequest struct {
	Section string          `json:"section"`
	Data    json.RawMessage `json:"data"`
}

func (r UpdateSectionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Section,
			validation.Required.Error("section is required"),
			validation.In(sectionValues()...).Error("unknown section"),
		),
		validation.Field(&r.Data,
			validation.By(requirePayload),
		),
	)
}

// PreviewRequest is a sample booking used to render the contact templates.
type PreviewRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

func (r PreviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required.Error("email is required"), is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.Phone, validation.Required.Error("phone is required"), validation.Length(3, 40)),
		validation.Field(&r.Service, validation.Required.Error("service is required")),
		validation.Field(&r.Message, validation.Length(0, 5000)),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// SettingsResponse exposes editor feature flags.
type SettingsResponse struct {
	LinkEditing bool `json:"linkEditing"`
}

// UploadResponse is returned by the image upload endpoint.
type UploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

func sectionValues() []interface{} {
	out := make([]interface{}, 0, len(AllSections()))
	for _, s := range AllSections() {
		out = append(out, string(s))
	}
	return out
}

func requirePayload(value interface{}) error {
	raw, _ := value.(json.RawMessage)
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return errors.New("data is required")
	}
	return nil
}
