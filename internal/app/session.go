package app

import (
	"encoding/json"
	"net/http"

	"github.com/bioskopid/bioskop-api/internal/domain"
)

type sessionKey string

const (
	SessionKeyFlow = sessionKey("flow")
)

func (s sessionKey) String() string {
	return string(s)
}

// sessionGetFlow loads the booking flow stored in the current session, or
// nil when the session has none yet.
func (app *application) sessionGetFlow(r *http.Request) (*domain.Flow, error) {
	data := app.sessionManager.GetBytes(r.Context(), SessionKeyFlow.String())
	if len(data) == 0 {
		return nil, nil
	}

	var flow domain.Flow

	err := json.Unmarshal(data, &flow)
	if err != nil {
		return nil, err
	}

	return &flow, nil
}

func (app *application) sessionPutFlow(r *http.Request, flow *domain.Flow) error {
	data, err := json.Marshal(flow)
	if err != nil {
		return err
	}

	app.sessionManager.Put(r.Context(), SessionKeyFlow.String(), data)

	return nil
}
