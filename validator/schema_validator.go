package validator

import (
	"github.com/Oudwins/zog"
)

// InsightsRequestSchema bounds the normalized symbol list: each token
// stays within ticker length and the batch stays small enough that the
// provider fan-out remains sane.
var InsightsRequestSchema = zog.Struct(zog.Shape{
	"symbols": zog.Slice(zog.String().Max(32)).Max(50),
})

// FirstIssue flattens a zog issue map into a single user-facing message.
func FirstIssue(issues zog.ZogIssueMap) string {
	for _, list := range issues {
		for _, issue := range list {
			if issue != nil && issue.Message != "" {
				return issue.Message
			}
		}
	}
	return "invalid request"
}
