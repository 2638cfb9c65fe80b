package database

import (
	"database/sql"
	"fmt"
)

// BroadcastRecipient is the sentinel matched by every student's message
// feed in addition to their own username.
const BroadcastRecipient = "all"

// Message is one announcement or direct message.
type Message struct {
	ID         int64  `json:"id"`
	Text       string `json:"message_text"`
	DateSent   string `json:"date_sent"`
	SenderType string `json:"sender_type"`
	Recipient  string `json:"recipient"`
}

// SendMessage appends a message row. An empty recipient is sent to the
// broadcast sentinel.
func (db *DB) SendMessage(text, date, senderType, recipient string) error {
	if recipient == "" {
		recipient = BroadcastRecipient
	}
	_, err := db.Exec(`
		INSERT INTO messages (message_text, date_sent, sender_type, recipient)
		VALUES (?, ?, ?, ?)
	`, text, date, senderType, recipient)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// ListMessagesFor returns messages addressed exactly to recipient or to the
// broadcast sentinel, newest date_sent first (string comparison, not
// calendar-aware).
func (db *DB) ListMessagesFor(recipient string) ([]Message, error) {
	rows, err := db.Query(`
		SELECT id, message_text, date_sent, sender_type, recipient
		FROM messages
		WHERE recipient = ? OR recipient = ?
		ORDER BY date_sent DESC
	`, recipient, BroadcastRecipient)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows)
}

// ListAllMessages returns every message, newest date_sent first.
func (db *DB) ListAllMessages() ([]Message, error) {
	rows, err := db.Query(`
		SELECT id, message_text, date_sent, sender_type, recipient
		FROM messages
		ORDER BY date_sent DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows)
}

func scanMessages(rows *sql.Rows) ([]Message, error) {
	var messages []Message
	for rows.Next() {
		var (
			m                                     Message
			text, dateSent, senderType, recipient sql.NullString
		)
		if err := rows.Scan(&m.ID, &text, &dateSent, &senderType, &recipient); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		m.Text = nullStringValue(text)
		m.DateSent = nullStringValue(dateSent)
		m.SenderType = nullStringValue(senderType)
		m.Recipient = nullStringValue(recipient)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
