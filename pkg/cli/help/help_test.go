package help

import (
	"strings"
	"testing"
)

func TestEveryTopicIsEmbedded(t *testing.T) {
	for _, topic := range AvailableTopics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Errorf("GetTopic(%q) error = %v", topic, err)
			continue
		}
		if strings.TrimSpace(content) == "" {
			t.Errorf("GetTopic(%q) is empty", topic)
		}
		if TopicDescriptions[topic] == "" {
			t.Errorf("topic %q has no description", topic)
		}
	}
}

func TestGetTopic_Normalizes(t *testing.T) {
	if _, err := GetTopic("  FORMAT "); err != nil {
		t.Errorf("GetTopic with spaces and case: %v", err)
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	_, err := GetTopic("templating")
	if err == nil {
		t.Fatal("GetTopic(templating) error = nil, want error")
	}
	if !strings.Contains(err.Error(), "monotonic") {
		t.Errorf("error should list available topics, got: %v", err)
	}
}
