package workspace

// Tag keys every provisioned resource must carry. Caller-supplied tags with
// the same keys are overridden.
const (
	TagKeyTeam               = "team"
	TagKeyEnvironment        = "environment"
	TagKeyCostCenter         = "cost-center"
	TagKeyManagedBy          = "managed-by"
	TagKeyComponent          = "component"
	TagKeyDataClassification = "data-classification"
)

const (
	managedByValue = "pulumi"
	componentValue = "databricks-workspace"
)

// complianceTags produces the full tag set for a normalized request.
func complianceTags(args *WorkspaceArgs) map[string]string {
	mandatory := map[string]string{
		TagKeyTeam:        args.TeamName,
		TagKeyEnvironment: args.Environment,
		TagKeyCostCenter:  args.CostCenter,
		TagKeyManagedBy:   managedByValue,
		TagKeyComponent:   componentValue,
	}
	if args.DataClassification != "" {
		mandatory[TagKeyDataClassification] = args.DataClassification
	}
	return mergeTags(mandatory, args.Tags)
}

// mergeTags combines both maps without mutating either. Mandatory keys win
// on collision.
func mergeTags(mandatory, user map[string]string) map[string]string {
	merged := make(map[string]string, len(mandatory)+len(user))
	for k, v := range user {
		merged[k] = v
	}
	for k, v := range mandatory {
		merged[k] = v
	}
	return merged
}
