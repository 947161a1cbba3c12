package controllers

import (
	"net/http"

	"github.com/shoplite/storefront/api/responses"
)

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
