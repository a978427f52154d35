package match

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/standardbeagle/namesake/internal/config"
	"github.com/standardbeagle/namesake/internal/distance"
	"github.com/standardbeagle/namesake/internal/entity"
	"github.com/standardbeagle/namesake/internal/names"
	"github.com/standardbeagle/namesake/internal/types"
)

// objectStrictRate allows one edit per five characters in object names
const objectStrictRate = 5

// minIdentifierOverlap is the shortest identifier that may agree with a
// longer one by containment
const minIdentifierOverlap = 4

// Result is the outcome of comparing two entities
type Result struct {
	Score  float64 `json:"score"`
	Detail string  `json:"detail"`
}

// analyzeFunc produces the analyzed names of an entity
type analyzeFunc func(tag types.NameTypeTag, e entity.Entity, isQuery bool) []*types.Name

// NameMatch compares the names of two entities using the shared analyzer
func NameMatch(query, result entity.Entity, cfg *config.ScoringConfig) Result {
	return nameMatch(names.EntityNames, query, result, cfg)
}

func nameMatch(analyze analyzeFunc, query, result entity.Entity, cfg *config.ScoringConfig) Result {
	if cfg == nil {
		cfg = config.Default()
	}

	tag := entity.CommonTypeTag(query, result)
	if tag == types.NameTypeUnknown {
		schema, ok := entity.CommonSchema(query.Schema(), result.Schema())
		if !ok {
			schema = query.Schema()
		}
		return Result{Detail: "Matching is unsupported for schema: " + schema}
	}

	qNames := analyze(tag, query, true)
	rNames := analyze(tag, result, false)
	if len(qNames) == 0 || len(rNames) == 0 {
		return Result{Detail: "No names available for matching"}
	}

	var res Result
	if tag == types.NameTypeObject {
		res = matchObjectNames(qNames, rNames, cfg)
	} else if form, ok := literalMatch(qNames, rNames); ok {
		res = Result{Score: 1.0, Detail: fmt.Sprintf("[%s: literal match]", form)}
	} else {
		found := false
		for _, q := range qNames {
			for _, r := range rNames {
				score, detail := MatchNameSymbolic(q, r, cfg)
				if !found || score >= res.Score {
					found = true
					res = Result{Score: score, Detail: detail}
				}
			}
		}
	}

	if tag != types.NameTypePerson {
		res = checkIdentifiers(query, result, res, cfg)
	}
	return res
}

// literalMatch returns the longest comparable form both sides share
func literalMatch(qNames, rNames []*types.Name) (string, bool) {
	forms := make(map[string]bool, len(qNames))
	for _, q := range qNames {
		forms[q.Form] = true
	}
	best, found := "", false
	for _, r := range rNames {
		if !forms[r.Form] {
			continue
		}
		if !found || utf8.RuneCountInString(r.Form) > utf8.RuneCountInString(best) {
			best, found = r.Form, true
		}
	}
	return best, found
}

// matchObjectNames compares vessel and asset names by strict edit distance.
// Names whose embedded numbers differ are penalized by number_mismatch.
func matchObjectNames(qNames, rNames []*types.Name, cfg *config.ScoringConfig) Result {
	var res Result
	found := false
	for _, q := range qNames {
		for _, r := range rNames {
			score := distance.StrictLevenshtein(q.Form, r.Form, objectStrictRate)
			detail := fmt.Sprintf("[%s~%s OBJ %.2f]", q.Form, r.Form, score)
			if digitsOf(q.Form) != digitsOf(r.Form) {
				score *= 1 - cfg.NumberMismatch
				detail += " [number mismatch]"
			}
			if !found || score >= res.Score {
				found = true
				res = Result{Score: score, Detail: detail}
			}
		}
	}
	return res
}

func digitsOf(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// checkIdentifiers penalizes entities that both carry identifiers when no
// identifier of one agrees with an identifier of the other
func checkIdentifiers(query, result entity.Entity, res Result, cfg *config.ScoringConfig) Result {
	qIDs := normalizedIdentifiers(query)
	rIDs := normalizedIdentifiers(result)
	if len(qIDs) == 0 || len(rIDs) == 0 {
		return res
	}
	for _, q := range qIDs {
		for _, r := range rIDs {
			if identifiersAgree(q, r) {
				return res
			}
		}
	}
	res.Score *= 1 - cfg.IdentifierMismatch
	res.Detail += " [identifier mismatch]"
	return res
}

func normalizedIdentifiers(e entity.Entity) []string {
	var out []string
	for _, v := range e.GetTypeValues(entity.TypeIdentifier, true) {
		if id := normalizeIdentifier(v); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func normalizeIdentifier(v string) string {
	var sb strings.Builder
	for _, r := range v {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToUpper(r))
		}
	}
	return sb.String()
}

// identifiersAgree accepts equal identifiers and prefix or suffix extensions
// such as "137332" and "E137332"
func identifiersAgree(a, b string) bool {
	if a == b {
		return true
	}
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}
	return len(short) >= minIdentifierOverlap && strings.Contains(long, short)
}
