// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rmagpantay/aral/ent/analyticsevent"
	"github.com/rmagpantay/aral/ent/llmrequestevent"
	"github.com/rmagpantay/aral/ent/progressrecord"
	"github.com/rmagpantay/aral/ent/resultevent"
	"github.com/rmagpantay/aral/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analyticseventMixin := schema.AnalyticsEvent{}.Mixin()
	analyticseventMixinFields0 := analyticseventMixin[0].Fields()
	_ = analyticseventMixinFields0
	analyticseventFields := schema.AnalyticsEvent{}.Fields()
	_ = analyticseventFields
	// analyticseventDescTimestamp is the schema descriptor for timestamp field.
	analyticseventDescTimestamp := analyticseventMixinFields0[1].Descriptor()
	// analyticsevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analyticsevent.DefaultTimestamp = analyticseventDescTimestamp.Default.(func() time.Time)
	// analyticseventDescName is the schema descriptor for name field.
	analyticseventDescName := analyticseventFields[0].Descriptor()
	// analyticsevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	analyticsevent.NameValidator = analyticseventDescName.Validators[0].(func(string) error)
	// analyticseventDescPercentage is the schema descriptor for percentage field.
	analyticseventDescPercentage := analyticseventFields[4].Descriptor()
	// analyticsevent.DefaultPercentage holds the default value on creation for the percentage field.
	analyticsevent.DefaultPercentage = analyticseventDescPercentage.Default.(float64)
	// analyticseventDescDurationMinutes is the schema descriptor for duration_minutes field.
	analyticseventDescDurationMinutes := analyticseventFields[5].Descriptor()
	// analyticsevent.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	analyticsevent.DefaultDurationMinutes = analyticseventDescDurationMinutes.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescUserID is the schema descriptor for user_id field.
	progressrecordDescUserID := progressrecordFields[0].Descriptor()
	// progressrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progressrecord.UserIDValidator = progressrecordDescUserID.Validators[0].(func(string) error)
	// progressrecordDescUpdatedAt is the schema descriptor for updated_at field.
	progressrecordDescUpdatedAt := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressrecord.DefaultUpdatedAt = progressrecordDescUpdatedAt.Default.(func() time.Time)
	// progressrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressrecord.UpdateDefaultUpdatedAt = progressrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	resulteventMixin := schema.ResultEvent{}.Mixin()
	resulteventMixinFields0 := resulteventMixin[0].Fields()
	_ = resulteventMixinFields0
	resulteventFields := schema.ResultEvent{}.Fields()
	_ = resulteventFields
	// resulteventDescTimestamp is the schema descriptor for timestamp field.
	resulteventDescTimestamp := resulteventMixinFields0[1].Descriptor()
	// resultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	resultevent.DefaultTimestamp = resulteventDescTimestamp.Default.(func() time.Time)
	// resulteventDescResultID is the schema descriptor for result_id field.
	resulteventDescResultID := resulteventFields[0].Descriptor()
	// resultevent.ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	resultevent.ResultIDValidator = resulteventDescResultID.Validators[0].(func(string) error)
	// resulteventDescUserID is the schema descriptor for user_id field.
	resulteventDescUserID := resulteventFields[1].Descriptor()
	// resultevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	resultevent.UserIDValidator = resulteventDescUserID.Validators[0].(func(string) error)
	// resulteventDescAssessmentID is the schema descriptor for assessment_id field.
	resulteventDescAssessmentID := resulteventFields[2].Descriptor()
	// resultevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	resultevent.AssessmentIDValidator = resulteventDescAssessmentID.Validators[0].(func(string) error)
	// resulteventDescSubject is the schema descriptor for subject field.
	resulteventDescSubject := resulteventFields[3].Descriptor()
	// resultevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	resultevent.SubjectValidator = resulteventDescSubject.Validators[0].(func(string) error)
	// resulteventDescScore is the schema descriptor for score field.
	resulteventDescScore := resulteventFields[4].Descriptor()
	// resultevent.DefaultScore holds the default value on creation for the score field.
	resultevent.DefaultScore = resulteventDescScore.Default.(int)
	// resulteventDescPercentage is the schema descriptor for percentage field.
	resulteventDescPercentage := resulteventFields[5].Descriptor()
	// resultevent.DefaultPercentage holds the default value on creation for the percentage field.
	resultevent.DefaultPercentage = resulteventDescPercentage.Default.(float64)
	// resulteventDescPisaProjection is the schema descriptor for pisa_projection field.
	resulteventDescPisaProjection := resulteventFields[6].Descriptor()
	// resultevent.DefaultPisaProjection holds the default value on creation for the pisa_projection field.
	resultevent.DefaultPisaProjection = resulteventDescPisaProjection.Default.(int)
	// resulteventDescDurationMinutes is the schema descriptor for duration_minutes field.
	resulteventDescDurationMinutes := resulteventFields[7].Descriptor()
	// resultevent.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	resultevent.DefaultDurationMinutes = resulteventDescDurationMinutes.Default.(int)
}
