package server

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/xhil-io/autolens-web/mail"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type supportTicketRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SupportTicketHandler forwards a support form submission as an email.
// Nothing is stored locally; the ticket id only ties the log line to the
// outbound message.
func (s *Server) SupportTicketHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req supportTicketRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Malformed request body"})
			return
		}

		if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "All fields are required"})
			return
		}
		if !emailPattern.MatchString(req.Email) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid email address"})
			return
		}

		ticketID := uuid.New().String()
		msg := mail.Message{
			From:     s.config.GetSupportSender(),
			To:       []string{s.config.GetSupportRecipient()},
			ReplyTo:  req.Email,
			Subject:  fmt.Sprintf("%s Support: %s", s.config.GetAppName(), req.Subject),
			TextBody: supportTextBody(req, ticketID),
			HTMLBody: supportHTMLBody(req, ticketID),
		}

		if err := s.mailer.Send(r.Context(), msg); err != nil {
			log.Err(err).Str("ticket_id", ticketID).Msg("Failed to send support email")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to send support request"})
			return
		}

		log.Info().Str("ticket_id", ticketID).Str("subject", req.Subject).Msg("Support request sent")
		writeJSON(w, http.StatusOK, map[string]string{"message": "Support request sent successfully"})
	}
}

func supportTextBody(req supportTicketRequest, ticketID string) string {
	return fmt.Sprintf(`New Support Request

From: %s (%s)
Subject: %s

Message:
%s

---
Ticket %s, sent from the support form`, req.Name, req.Email, req.Subject, req.Message, ticketID)
}

func supportHTMLBody(req supportTicketRequest, ticketID string) string {
	message := strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>")
	return fmt.Sprintf(`<h2>New Support Request</h2>
<p><strong>From:</strong> %s (%s)</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<hr>
<p><em>Ticket %s, sent from the support form</em></p>`,
		html.EscapeString(req.Name), html.EscapeString(req.Email), html.EscapeString(req.Subject), message, ticketID)
}
