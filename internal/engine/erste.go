package engine

import (
	"fmt"
	"regexp"
	"time"

	"github.com/csomaati/expensecat/internal/table"
)

// ErsteCommentExtractor is the registry name of the extractor that parses
// the structured free text Erste Bank puts in the comment column of a
// card-purchase row.
const ErsteCommentExtractor = "erste_comment"

// CommentColumn is the ledger column holding the bank comment
// ("Jegyzet" in the Erste CSV export).
const CommentColumn = "Jegyzet"

// ersteCommentRe parses the Erste card-purchase comment text:
// card token, optional numeric id, place of purchase, YYMMDD date glued to
// a HH:MM time, the static "vásár." marker, and an optional
// amount/currency/rate suffix seen on currency-exchange purchases.
//
// Anchored at the start only - trailing text after the exchange suffix is
// tolerated, matching the bank's slightly drifting format.
var ersteCommentRe = regexp.MustCompile(`\A` +
	`(?P<card>\S+)\s+` +
	`(?:(?P<id>\S*[0-9]\S*)\s+)?` +
	`(?P<place>.+)` +
	`(?P<date>[0-9]{6})(?P<time>[0-9]{2}:[0-9]{2})\s+` +
	`(?:.+)?` +
	`vásár\.\s*` +
	`(?P<exchange>(?P<amount>\S+)\s+(?P<currency>\S+)\s+(?P<rate>\S+))?`)

// commentTimeLayout matches the glued date+time token in the comment.
const commentTimeLayout = "06010215:04"

// CommentDateProperty is the derived property holding the purchase
// timestamp normalized to "YYYY-MM-DD HH:MM".
const CommentDateProperty = "comment_date"

// extractErsteComment derives properties from the comment column.
//
// A missing comment yields an empty bag, not an error: a rule requiring
// this extractor simply won't find its fields and fails to match. Comment
// text that does not conform to the grammar is an ExtractionError.
//
// Optional grammar tokens that are absent (id, exchange suffix) appear in
// the bag with an empty value.
func extractErsteComment(row table.Row) (Properties, error) {
	comment := row.Get(CommentColumn)
	if table.IsMissing(comment) {
		return Properties{}, nil
	}

	text := comment.Format()
	match := ersteCommentRe.FindStringSubmatch(text)
	if match == nil {
		return nil, &ExtractionError{
			Extractor: ErsteCommentExtractor,
			Message:   fmt.Sprintf("invalid erste comment: %q", text),
		}
	}

	props := make(Properties)
	for i, name := range ersteCommentRe.SubexpNames() {
		if name == "" {
			continue
		}
		props[name] = match[i]
	}

	ts, err := time.Parse(commentTimeLayout, props["date"]+props["time"])
	if err != nil {
		return nil, &ExtractionError{
			Extractor: ErsteCommentExtractor,
			Message:   fmt.Sprintf("invalid purchase timestamp in comment: %q", text),
			Err:       err,
		}
	}
	props[CommentDateProperty] = ts.Format("2006-01-02 15:04")

	return props, nil
}
