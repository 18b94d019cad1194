package httpclient

import (
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/kbukum/testrail/errors"
)

// classifyStatus returns nil for 200 and a REMOTE error for anything else.
// The message is the "error" member of the body, the raw body when that is
// missing, or the default message when the body is empty.
func classifyStatus(status int, body []byte) error {
	if status == http.StatusOK {
		return nil
	}
	return errors.Remote(status, errorMessage(body))
}

func errorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if gjson.ValidBytes(body) {
		if msg := gjson.GetBytes(body, "error"); msg.Type == gjson.String {
			return msg.Str
		}
	}
	return strings.TrimSpace(string(body))
}
