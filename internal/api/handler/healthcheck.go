package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-profile-api/pkg/apiErrors"
)

const healthcheckTimeout = 2 * time.Second

// Pinger verifica a disponibilidade de uma dependência externa
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde com o horário atual quando o banco está acessível.
// Sem pinger configurado responde apenas como liveness.
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("healthcheck: banco de dados indisponível")
				apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Banco de dados indisponível", nil)
				return
			}
		}

		if _, err := w.Write([]byte(time.Now().Format(time.RFC3339))); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
