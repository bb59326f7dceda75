package messages

import (
	"strings"

	"max.ks1230/ledger-bot/internal/model/digest"
)

func textReply(text string) Reply {
	return Reply{Text: text}
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, digest.Bullet+item)
	}
	return strings.Join(lines, "\n")
}
