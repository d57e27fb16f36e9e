package workspace

import "fmt"

// Subnet names are fixed literals; the managed workspace service references
// them by value through its custom parameters.
const (
	PrivateSubnetName = "databricks-private"
	PublicSubnetName  = "databricks-public"
)

// Resource names are a pure function of team and environment so that
// repeated composition with identical inputs lands on the same managed
// resources.

func resourceGroupName(team, env string) string {
	return fmt.Sprintf("rg-dbw-%s-%s", team, env)
}

func managedResourceGroupName(team, env string) string {
	return fmt.Sprintf("rg-dbw-managed-%s-%s", team, env)
}

// managedResourceGroupID formats the identifier of the resource group the
// provider creates and owns as a side effect of workspace creation.
func managedResourceGroupID(subscriptionID, team, env string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s", subscriptionID, managedResourceGroupName(team, env))
}

func virtualNetworkName(team, env string) string {
	return fmt.Sprintf("vnet-dbw-%s-%s", team, env)
}

func networkSecurityGroupName(kind, team, env string) string {
	return fmt.Sprintf("nsg-dbw-%s-%s-%s", kind, team, env)
}

func workspaceName(team, env string) string {
	return fmt.Sprintf("dbw-%s-%s", team, env)
}

func peeringName(team, env string) string {
	return fmt.Sprintf("peer-dbw-%s-%s", team, env)
}
