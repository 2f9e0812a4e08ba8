// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adaptivecat/planner/ent/attempt"
	"github.com/adaptivecat/planner/ent/mastery"
	"github.com/adaptivecat/planner/ent/pyqquestion"
	"github.com/adaptivecat/planner/ent/question"
	"github.com/adaptivecat/planner/ent/schema"
	"github.com/adaptivecat/planner/ent/session"
	"github.com/adaptivecat/planner/ent/sessionpack"
	"github.com/adaptivecat/planner/ent/studentcoverage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptFields[5].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	masteryFields := schema.Mastery{}.Fields()
	_ = masteryFields
	// masteryDescAccuracyEasy is the schema descriptor for accuracy_easy field.
	masteryDescAccuracyEasy := masteryFields[4].Descriptor()
	// mastery.DefaultAccuracyEasy holds the default value on creation for the accuracy_easy field.
	mastery.DefaultAccuracyEasy = masteryDescAccuracyEasy.Default.(float64)
	// masteryDescAccuracyMedium is the schema descriptor for accuracy_medium field.
	masteryDescAccuracyMedium := masteryFields[5].Descriptor()
	// mastery.DefaultAccuracyMedium holds the default value on creation for the accuracy_medium field.
	mastery.DefaultAccuracyMedium = masteryDescAccuracyMedium.Default.(float64)
	// masteryDescAccuracyHard is the schema descriptor for accuracy_hard field.
	masteryDescAccuracyHard := masteryFields[6].Descriptor()
	// mastery.DefaultAccuracyHard holds the default value on creation for the accuracy_hard field.
	mastery.DefaultAccuracyHard = masteryDescAccuracyHard.Default.(float64)
	// masteryDescEfficiencyScore is the schema descriptor for efficiency_score field.
	masteryDescEfficiencyScore := masteryFields[7].Descriptor()
	// mastery.DefaultEfficiencyScore holds the default value on creation for the efficiency_score field.
	mastery.DefaultEfficiencyScore = masteryDescEfficiencyScore.Default.(float64)
	// masteryDescExposureCount is the schema descriptor for exposure_count field.
	masteryDescExposureCount := masteryFields[8].Descriptor()
	// mastery.DefaultExposureCount holds the default value on creation for the exposure_count field.
	mastery.DefaultExposureCount = masteryDescExposureCount.Default.(int)
	// masteryDescMasteryPct is the schema descriptor for mastery_pct field.
	masteryDescMasteryPct := masteryFields[9].Descriptor()
	// mastery.DefaultMasteryPct holds the default value on creation for the mastery_pct field.
	mastery.DefaultMasteryPct = masteryDescMasteryPct.Default.(float64)
	// masteryDescLastActivityAt is the schema descriptor for last_activity_at field.
	masteryDescLastActivityAt := masteryFields[10].Descriptor()
	// mastery.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	mastery.DefaultLastActivityAt = masteryDescLastActivityAt.Default.(func() time.Time)
	// masteryDescUpdatedAt is the schema descriptor for updated_at field.
	masteryDescUpdatedAt := masteryFields[11].Descriptor()
	// mastery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mastery.DefaultUpdatedAt = masteryDescUpdatedAt.Default.(func() time.Time)
	// mastery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mastery.UpdateDefaultUpdatedAt = masteryDescUpdatedAt.UpdateDefault.(func() time.Time)
	pyqquestionFields := schema.PYQQuestion{}.Fields()
	_ = pyqquestionFields
	// pyqquestionDescIsActive is the schema descriptor for is_active field.
	pyqquestionDescIsActive := pyqquestionFields[14].Descriptor()
	// pyqquestion.DefaultIsActive holds the default value on creation for the is_active field.
	pyqquestion.DefaultIsActive = pyqquestionDescIsActive.Default.(bool)
	// pyqquestionDescQualityVerified is the schema descriptor for quality_verified field.
	pyqquestionDescQualityVerified := pyqquestionFields[15].Descriptor()
	// pyqquestion.DefaultQualityVerified holds the default value on creation for the quality_verified field.
	pyqquestion.DefaultQualityVerified = pyqquestionDescQualityVerified.Default.(bool)
	// pyqquestionDescCreatedAt is the schema descriptor for created_at field.
	pyqquestionDescCreatedAt := pyqquestionFields[16].Descriptor()
	// pyqquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	pyqquestion.DefaultCreatedAt = pyqquestionDescCreatedAt.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescIsActive is the schema descriptor for is_active field.
	questionDescIsActive := questionFields[19].Descriptor()
	// question.DefaultIsActive holds the default value on creation for the is_active field.
	question.DefaultIsActive = questionDescIsActive.Default.(bool)
	// questionDescQualityVerified is the schema descriptor for quality_verified field.
	questionDescQualityVerified := questionFields[20].Descriptor()
	// question.DefaultQualityVerified holds the default value on creation for the quality_verified field.
	question.DefaultQualityVerified = questionDescQualityVerified.Default.(bool)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[23].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescUpdatedAt is the schema descriptor for updated_at field.
	questionDescUpdatedAt := questionFields[24].Descriptor()
	// question.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	question.DefaultUpdatedAt = questionDescUpdatedAt.Default.(func() time.Time)
	// question.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	question.UpdateDefaultUpdatedAt = questionDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[6].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	sessionpackFields := schema.SessionPack{}.Fields()
	_ = sessionpackFields
	// sessionpackDescCreatedAt is the schema descriptor for created_at field.
	sessionpackDescCreatedAt := sessionpackFields[4].Descriptor()
	// sessionpack.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionpack.DefaultCreatedAt = sessionpackDescCreatedAt.Default.(func() time.Time)
	studentcoverageFields := schema.StudentCoverage{}.Fields()
	_ = studentcoverageFields
	// studentcoverageDescSessionsSeen is the schema descriptor for sessions_seen field.
	studentcoverageDescSessionsSeen := studentcoverageFields[4].Descriptor()
	// studentcoverage.DefaultSessionsSeen holds the default value on creation for the sessions_seen field.
	studentcoverage.DefaultSessionsSeen = studentcoverageDescSessionsSeen.Default.(int)
}
