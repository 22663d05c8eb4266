package server

import (
	"net/http"

	"github.com/portfolio/contactmail/internal/contact"
	"github.com/portfolio/contactmail/internal/web"
	"github.com/portfolio/contactmail/middlewares"
)

// ContactPath is the submission endpoint.
const ContactPath = "/api/send-contact-email"

// ContactHandler exposes the contact pipeline over HTTP.
type ContactHandler struct {
	service *contact.Service
}

// NewContactHandler creates a handler for svc.
func NewContactHandler(svc *contact.Service) *ContactHandler {
	return &ContactHandler{service: svc}
}

// Routes implements web.Handler.
func (h *ContactHandler) Routes(r web.Router) {
	r.POST(ContactPath, h.send)
}

func (h *ContactHandler) send(c web.Context) error {
	return writeResponse(c, h.service.HandleBody(c, middlewares.RawBody(c)))
}

type metricsHandler struct {
	handler http.Handler
}

func (h metricsHandler) Routes(r web.Router) {
	r.Handle("/metrics", h.handler)
}

func writeResponse(c web.Context, resp contact.Response) error {
	return c.Blob(resp.Status, "application/json", resp.JSON())
}
