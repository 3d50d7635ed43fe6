// Package help provides embedded documentation for ulidkit help topics.
package help

import (
	"embed"
	"fmt"
	"slices"
	"strings"
)

//go:embed topics/*.txt
var Topics embed.FS

// AvailableTopics lists all available help topics.
var AvailableTopics = []string{"format", "monotonic", "base32", "uuid", "config"}

// TopicDescriptions provides short descriptions for each topic.
var TopicDescriptions = map[string]string{
	"format":    "ULID layout and canonical text form",
	"monotonic": "Ordering within a millisecond",
	"base32":    "Crockford Base32 alphabet and aliases",
	"uuid":      "Converting between ULIDs and UUIDs",
	"config":    "Configuration files and environment",
}

// GetTopic retrieves the content of a help topic by name.
func GetTopic(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if !slices.Contains(AvailableTopics, name) {
		return "", fmt.Errorf("unknown help topic: %s\n\nAvailable topics:\n%s", name, ListTopics())
	}

	content, err := Topics.ReadFile("topics/" + name + ".txt")
	if err != nil {
		return "", fmt.Errorf("failed to read topic %s: %w", name, err)
	}

	return string(content), nil
}

// ListTopics returns a formatted list of available topics.
func ListTopics() string {
	var sb strings.Builder
	for _, topic := range AvailableTopics {
		fmt.Fprintf(&sb, "  %-15s %s\n", topic, TopicDescriptions[topic])
	}
	return sb.String()
}
