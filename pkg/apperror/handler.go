package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON renders err as {"error":{...}}. Unknown errors become internal_error;
// 5xx responses are logged at error level.
func WriteJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	code, body := ToHTTPError(err)

	if code >= 500 && log != nil {
		log.Error("request error",
			slog.Int("status", code),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}
