package handler

import (
	"strings"

	"hostelgate/internal/gate/models"
	"hostelgate/internal/verification"
	dErrors "hostelgate/pkg/domain-errors"
)

// RegisterResidentRequest is the body of POST /residents. PhotoURL is opaque:
// a link or an inline data URL, passed through unchecked.
type RegisterResidentRequest struct {
	Name       string `json:"name"`
	RoomNumber string `json:"room_number"`
	PhotoURL   string `json:"photo_url"`
}

func (r *RegisterResidentRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.RoomNumber = strings.TrimSpace(r.RoomNumber)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeMissingField, "name is required")
	}
	if r.RoomNumber == "" {
		return dErrors.New(dErrors.CodeMissingField, "room_number is required")
	}
	if len(r.Name) > 200 || len(r.RoomNumber) > 50 {
		return dErrors.New(dErrors.CodeValidation, "field too long")
	}
	return nil
}

// LogMovementRequest is the body of POST /movements. Destination is only
// read for EXIT.
type LogMovementRequest struct {
	StudentID   string  `json:"student_id"`
	Action      string  `json:"action"`
	Destination *string `json:"destination,omitempty"`

	parsedAction models.Action
}

func (r *LogMovementRequest) Validate() error {
	r.StudentID = strings.TrimSpace(r.StudentID)
	if r.StudentID == "" {
		return dErrors.New(dErrors.CodeMissingField, "student_id is required")
	}
	action, err := models.ParseAction(r.Action)
	if err != nil {
		return err
	}
	r.parsedAction = action
	if r.Destination != nil {
		d := strings.TrimSpace(*r.Destination)
		r.Destination = &d
	}
	return nil
}

func (r *LogMovementRequest) ParsedAction() models.Action {
	return r.parsedAction
}

// VerifyRequest is the body of POST /terminal/verify.
type VerifyRequest struct {
	Method    string `json:"method"`
	StudentID string `json:"student_id"`

	parsedMethod verification.Method
}

func (r *VerifyRequest) Validate() error {
	r.StudentID = strings.TrimSpace(r.StudentID)
	if r.StudentID == "" {
		return dErrors.New(dErrors.CodeMissingField, "student_id is required")
	}
	m, err := verification.ParseMethod(r.Method)
	if err != nil {
		return err
	}
	r.parsedMethod = m
	return nil
}

func (r *VerifyRequest) ParsedMethod() verification.Method {
	return r.parsedMethod
}

// ConfirmDestinationRequest is the body of POST /terminal/destination.
type ConfirmDestinationRequest struct {
	Destination string `json:"destination"`
}

func (r *ConfirmDestinationRequest) Validate() error {
	r.Destination = strings.TrimSpace(r.Destination)
	if r.Destination == "" {
		return dErrors.New(dErrors.CodeMissingField, "destination is required")
	}
	return nil
}
