package sql

import (
	"embed"
)

// Migrations holds the DDL applied by db.ApplyMigrations, in filename order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/register_source_file.sql
var RegisterSourceFile string

//go:embed queries/lookup_source_file.sql
var LookupSourceFile string

//go:embed queries/update_file_status.sql
var UpdateFileStatus string

//go:embed queries/merge_companies.sql
var MergeCompanies string

//go:embed queries/delete_staging_batch.sql
var DeleteStagingBatch string

//go:embed queries/analyze_companies.sql
var AnalyzeCompanies string
