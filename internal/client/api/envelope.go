package api

import (
	"encoding/json"
	"io"

	"github.com/dmitrijs2005/hostctl/internal/client/models"
)

// envelope is the response wrapper every backend endpoint uses. Code is the
// application-level status, distinct from the transport status.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(r io.Reader) (*envelope, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (e *envelope) success() bool {
	return e.Code == 200 || e.Code == 201
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// tokenPayload is the credential part of login and refresh responses.
// RefreshToken may be absent on refresh; ExpiresIn is relative seconds.
type tokenPayload struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type loginPayload struct {
	tokenPayload
	User *models.User `json:"user"`
}

type powerRequest struct {
	Action string `json:"action"`
}

type orderRequest struct {
	PlanID string `json:"planId"`
	Months int    `json:"months"`
}

type redeemRequest struct {
	Code string `json:"code"`
}

type ticketRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type replyRequest struct {
	Body string `json:"body"`
}
