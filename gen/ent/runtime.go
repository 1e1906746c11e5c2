// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docshelf/docshelf/db/ent/schema"
	"github.com/docshelf/docshelf/gen/ent/automationrule"
	"github.com/docshelf/docshelf/gen/ent/category"
	"github.com/docshelf/docshelf/gen/ent/correspondent"
	"github.com/docshelf/docshelf/gen/ent/document"
	"github.com/docshelf/docshelf/gen/ent/version"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	automationruleFields := schema.AutomationRule{}.Fields()
	_ = automationruleFields
	// automationruleDescName is the schema descriptor for name field.
	automationruleDescName := automationruleFields[1].Descriptor()
	// automationrule.NameValidator is a validator for the "name" field. It is called by the builders before save.
	automationrule.NameValidator = automationruleDescName.Validators[0].(func(string) error)
	// automationruleDescTrigger is the schema descriptor for trigger field.
	automationruleDescTrigger := automationruleFields[2].Descriptor()
	// automationrule.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	automationrule.TriggerValidator = automationruleDescTrigger.Validators[0].(func(string) error)
	// automationruleDescEnabled is the schema descriptor for enabled field.
	automationruleDescEnabled := automationruleFields[3].Descriptor()
	// automationrule.DefaultEnabled holds the default value on creation for the enabled field.
	automationrule.DefaultEnabled = automationruleDescEnabled.Default.(bool)
	// automationruleDescCreatedAt is the schema descriptor for created_at field.
	automationruleDescCreatedAt := automationruleFields[7].Descriptor()
	// automationrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	automationrule.DefaultCreatedAt = automationruleDescCreatedAt.Default.(func() time.Time)
	// automationruleDescUpdatedAt is the schema descriptor for updated_at field.
	automationruleDescUpdatedAt := automationruleFields[8].Descriptor()
	// automationrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	automationrule.DefaultUpdatedAt = automationruleDescUpdatedAt.Default.(func() time.Time)
	// automationrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	automationrule.UpdateDefaultUpdatedAt = automationruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// automationruleDescID is the schema descriptor for id field.
	automationruleDescID := automationruleFields[0].Descriptor()
	// automationrule.DefaultID holds the default value on creation for the id field.
	automationrule.DefaultID = automationruleDescID.Default.(func() uuid.UUID)
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	correspondentFields := schema.Correspondent{}.Fields()
	_ = correspondentFields
	// correspondentDescName is the schema descriptor for name field.
	correspondentDescName := correspondentFields[1].Descriptor()
	// correspondent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	correspondent.NameValidator = correspondentDescName.Validators[0].(func(string) error)
	// correspondentDescMatchAlgorithm is the schema descriptor for match_algorithm field.
	correspondentDescMatchAlgorithm := correspondentFields[3].Descriptor()
	// correspondent.DefaultMatchAlgorithm holds the default value on creation for the match_algorithm field.
	correspondent.DefaultMatchAlgorithm = correspondentDescMatchAlgorithm.Default.(string)
	// correspondent.MatchAlgorithmValidator is a validator for the "match_algorithm" field. It is called by the builders before save.
	correspondent.MatchAlgorithmValidator = correspondentDescMatchAlgorithm.Validators[0].(func(string) error)
	// correspondentDescInsensitive is the schema descriptor for insensitive field.
	correspondentDescInsensitive := correspondentFields[4].Descriptor()
	// correspondent.DefaultInsensitive holds the default value on creation for the insensitive field.
	correspondent.DefaultInsensitive = correspondentDescInsensitive.Default.(bool)
	// correspondentDescID is the schema descriptor for id field.
	correspondentDescID := correspondentFields[0].Descriptor()
	// correspondent.DefaultID holds the default value on creation for the id field.
	correspondent.DefaultID = correspondentDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescName is the schema descriptor for name field.
	documentDescName := documentFields[1].Descriptor()
	// document.NameValidator is a validator for the "name" field. It is called by the builders before save.
	document.NameValidator = documentDescName.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[4].Descriptor()
	// document.DefaultFileSize holds the default value on creation for the file_size field.
	document.DefaultFileSize = documentDescFileSize.Default.(int64)
	// documentDescContentID is the schema descriptor for content_id field.
	documentDescContentID := documentFields[5].Descriptor()
	// document.ContentIDValidator is a validator for the "content_id" field. It is called by the builders before save.
	document.ContentIDValidator = documentDescContentID.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[12].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescVersioned is the schema descriptor for versioned field.
	documentDescVersioned := documentFields[13].Descriptor()
	// document.DefaultVersioned holds the default value on creation for the versioned field.
	document.DefaultVersioned = documentDescVersioned.Default.(bool)
	// documentDescMajorVersion is the schema descriptor for major_version field.
	documentDescMajorVersion := documentFields[14].Descriptor()
	// document.DefaultMajorVersion holds the default value on creation for the major_version field.
	document.DefaultMajorVersion = documentDescMajorVersion.Default.(int)
	// documentDescMinorVersion is the schema descriptor for minor_version field.
	documentDescMinorVersion := documentFields[15].Descriptor()
	// document.DefaultMinorVersion holds the default value on creation for the minor_version field.
	document.DefaultMinorVersion = documentDescMinorVersion.Default.(int)
	// documentDescPreviewStatus is the schema descriptor for preview_status field.
	documentDescPreviewStatus := documentFields[18].Descriptor()
	// document.PreviewStatusValidator is a validator for the "preview_status" field. It is called by the builders before save.
	document.PreviewStatusValidator = documentDescPreviewStatus.Validators[0].(func(string) error)
	// documentDescCreatedBy is the schema descriptor for created_by field.
	documentDescCreatedBy := documentFields[21].Descriptor()
	// document.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	document.CreatedByValidator = documentDescCreatedBy.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[22].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[23].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	versionFields := schema.Version{}.Fields()
	_ = versionFields
	// versionDescVersionNumber is the schema descriptor for version_number field.
	versionDescVersionNumber := versionFields[2].Descriptor()
	// version.VersionNumberValidator is a validator for the "version_number" field. It is called by the builders before save.
	version.VersionNumberValidator = versionDescVersionNumber.Validators[0].(func(int) error)
	// versionDescMajorVersion is the schema descriptor for major_version field.
	versionDescMajorVersion := versionFields[3].Descriptor()
	// version.DefaultMajorVersion holds the default value on creation for the major_version field.
	version.DefaultMajorVersion = versionDescMajorVersion.Default.(int)
	// versionDescMinorVersion is the schema descriptor for minor_version field.
	versionDescMinorVersion := versionFields[4].Descriptor()
	// version.DefaultMinorVersion holds the default value on creation for the minor_version field.
	version.DefaultMinorVersion = versionDescMinorVersion.Default.(int)
	// versionDescVersionLabel is the schema descriptor for version_label field.
	versionDescVersionLabel := versionFields[5].Descriptor()
	// version.VersionLabelValidator is a validator for the "version_label" field. It is called by the builders before save.
	version.VersionLabelValidator = versionDescVersionLabel.Validators[0].(func(string) error)
	// versionDescMajorFlag is the schema descriptor for major_flag field.
	versionDescMajorFlag := versionFields[6].Descriptor()
	// version.DefaultMajorFlag holds the default value on creation for the major_flag field.
	version.DefaultMajorFlag = versionDescMajorFlag.Default.(bool)
	// versionDescContentID is the schema descriptor for content_id field.
	versionDescContentID := versionFields[7].Descriptor()
	// version.ContentIDValidator is a validator for the "content_id" field. It is called by the builders before save.
	version.ContentIDValidator = versionDescContentID.Validators[0].(func(string) error)
	// versionDescFileSize is the schema descriptor for file_size field.
	versionDescFileSize := versionFields[9].Descriptor()
	// version.DefaultFileSize holds the default value on creation for the file_size field.
	version.DefaultFileSize = versionDescFileSize.Default.(int64)
	// versionDescCreatedAt is the schema descriptor for created_at field.
	versionDescCreatedAt := versionFields[13].Descriptor()
	// version.DefaultCreatedAt holds the default value on creation for the created_at field.
	version.DefaultCreatedAt = versionDescCreatedAt.Default.(func() time.Time)
	// versionDescID is the schema descriptor for id field.
	versionDescID := versionFields[0].Descriptor()
	// version.DefaultID holds the default value on creation for the id field.
	version.DefaultID = versionDescID.Default.(func() uuid.UUID)
}
