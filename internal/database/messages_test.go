package database

import "testing"

func TestListMessagesFor_MatchesRecipientAndBroadcast(t *testing.T) {
	db := newTestDB(t)

	sends := []struct{ text, date, recipient string }{
		{"for alice", "2024-01-02", "alice"},
		{"for everyone", "2024-01-03", "all"},
		{"for bob", "2024-01-04", "bob"},
		{"older broadcast", "2024-01-01", "all"},
	}
	for _, m := range sends {
		if err := db.SendMessage(m.text, m.date, "admin", m.recipient); err != nil {
			t.Fatalf("failed to send message: %v", err)
		}
	}

	messages, err := db.ListMessagesFor("alice")
	if err != nil {
		t.Fatalf("failed to list messages: %v", err)
	}

	want := []string{"for everyone", "for alice", "older broadcast"}
	if len(messages) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(messages))
	}
	for i, text := range want {
		if messages[i].Text != text {
			t.Fatalf("expected %q at position %d, got %q", text, i, messages[i].Text)
		}
	}
	for _, m := range messages {
		if m.Recipient == "bob" {
			t.Fatalf("message for another recipient leaked: %+v", m)
		}
	}
}

func TestSendMessage_EmptyRecipientBroadcasts(t *testing.T) {
	db := newTestDB(t)

	if err := db.SendMessage("hello", "2024-01-01", "admin", ""); err != nil {
		t.Fatalf("failed to send message: %v", err)
	}

	messages, err := db.ListMessagesFor("anyone")
	if err != nil {
		t.Fatalf("failed to list messages: %v", err)
	}
	if len(messages) != 1 || messages[0].Recipient != BroadcastRecipient {
		t.Fatalf("expected broadcast message, got %+v", messages)
	}
}

func TestListAllMessages_NewestFirst(t *testing.T) {
	db := newTestDB(t)

	for _, date := range []string{"2024-01-01", "2024-01-03", "2024-01-02"} {
		if err := db.SendMessage("m "+date, date, "admin", "all"); err != nil {
			t.Fatalf("failed to send message: %v", err)
		}
	}

	messages, err := db.ListAllMessages()
	if err != nil {
		t.Fatalf("failed to list messages: %v", err)
	}
	want := []string{"2024-01-03", "2024-01-02", "2024-01-01"}
	for i, date := range want {
		if messages[i].DateSent != date {
			t.Fatalf("expected %s at position %d, got %s", date, i, messages[i].DateSent)
		}
	}
}
