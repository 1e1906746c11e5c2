// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AutomationRulesColumns holds the columns for the "automation_rules" table.
	AutomationRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "actions", Type: field.TypeJSON, Nullable: true},
		{Name: "owner", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AutomationRulesTable holds the schema information for the "automation_rules" table.
	AutomationRulesTable = &schema.Table{
		Name:       "automation_rules",
		Columns:    AutomationRulesColumns,
		PrimaryKey: []*schema.Column{AutomationRulesColumns[0]},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// CorrespondentsColumns holds the columns for the "correspondents" table.
	CorrespondentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "match_pattern", Type: field.TypeString, Nullable: true},
		{Name: "match_algorithm", Type: field.TypeString, Default: "AUTO"},
		{Name: "insensitive", Type: field.TypeBool, Default: true},
	}
	// CorrespondentsTable holds the schema information for the "correspondents" table.
	CorrespondentsTable = &schema.Table{
		Name:       "correspondents",
		Columns:    CorrespondentsColumns,
		PrimaryKey: []*schema.Column{CorrespondentsColumns[0]},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "parent_folder_id", Type: field.TypeUUID, Nullable: true},
		{Name: "mime_type", Type: field.TypeString, Nullable: true},
		{Name: "file_size", Type: field.TypeInt64, Default: 0},
		{Name: "content_id", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString, Nullable: true},
		{Name: "text_content", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "categories", Type: field.TypeJSON, Nullable: true},
		{Name: "correspondent", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "ACTIVE"},
		{Name: "versioned", Type: field.TypeBool, Default: true},
		{Name: "major_version", Type: field.TypeInt, Default: 1},
		{Name: "minor_version", Type: field.TypeInt, Default: 0},
		{Name: "version_label", Type: field.TypeString, Nullable: true},
		{Name: "current_version_id", Type: field.TypeUUID, Nullable: true},
		{Name: "preview_status", Type: field.TypeString, Nullable: true},
		{Name: "preview_failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "preview_last_updated", Type: field.TypeTime, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_content_hash",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
			{
				Name:    "document_parent_folder_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[2]},
			},
			{
				Name:    "document_preview_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[18]},
			},
		},
	}
	// VersionsColumns holds the columns for the "versions" table.
	VersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "version_number", Type: field.TypeInt},
		{Name: "major_version", Type: field.TypeInt, Default: 1},
		{Name: "minor_version", Type: field.TypeInt, Default: 0},
		{Name: "version_label", Type: field.TypeString},
		{Name: "major_flag", Type: field.TypeBool, Default: true},
		{Name: "content_id", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString, Nullable: true},
		{Name: "file_size", Type: field.TypeInt64, Default: 0},
		{Name: "content_hash", Type: field.TypeString, Nullable: true},
		{Name: "comment", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// VersionsTable holds the schema information for the "versions" table.
	VersionsTable = &schema.Table{
		Name:       "versions",
		Columns:    VersionsColumns,
		PrimaryKey: []*schema.Column{VersionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "versions_documents_versions",
				Columns:    []*schema.Column{VersionsColumns[13]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "version_document_id_version_number",
				Unique:  true,
				Columns: []*schema.Column{VersionsColumns[13], VersionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AutomationRulesTable,
		CategoriesTable,
		CorrespondentsTable,
		DocumentsTable,
		VersionsTable,
	}
)

func init() {
	AutomationRulesTable.Annotation = &entsql.Annotation{
		Table: "automation_rules",
	}
	CategoriesTable.Annotation = &entsql.Annotation{
		Table: "categories",
	}
	CorrespondentsTable.Annotation = &entsql.Annotation{
		Table: "correspondents",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	VersionsTable.ForeignKeys[0].RefTable = DocumentsTable
	VersionsTable.Annotation = &entsql.Annotation{
		Table: "versions",
	}
}
