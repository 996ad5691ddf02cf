// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalyticsEvent is the predicate function for analyticsevent builders.
type AnalyticsEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ProgressRecord is the predicate function for progressrecord builders.
type ProgressRecord func(*sql.Selector)

// ResultEvent is the predicate function for resultevent builders.
type ResultEvent func(*sql.Selector)
