package middleware

import (
	"errors"
	"net/http"

	"github.com/en9inerd/go-svrouter/httpjson"
	"github.com/en9inerd/go-svrouter/router"
)

type HealthResponse struct {
	Status string `json:"status"`
}

// Health answers with {"status":"ok"}. Register it with Get.
func Health(req *router.Request, res router.Response, logs, config any, next router.Next) error {
	w, ok := res.(http.ResponseWriter)
	if !ok {
		return errors.New("health: response is not an http.ResponseWriter")
	}
	httpjson.WriteJSONWithStatus(w, http.StatusOK, HealthResponse{Status: "ok"})
	return nil
}
