package workspace

import (
	databricks "github.com/pulumi/pulumi-azure-native-sdk/databricks/v2"
	resources "github.com/pulumi/pulumi-azure-native-sdk/resources/v2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// Defaults applied to optional workspace arguments.
const (
	DefaultSkuTier     = "premium"
	DefaultEnvironment = "dev"
	DefaultCostCenter  = "unassigned"
)

// Workspace is an isolated Databricks analytics workspace with a dedicated
// spoke virtual network, two delegated subnets and an optional peering to a
// shared hub network.
type Workspace struct {
	pulumi.ResourceState

	WorkspaceURL             pulumi.StringOutput
	WorkspaceID              pulumi.StringOutput
	WorkspaceName            pulumi.StringOutput
	ResourceGroupName        pulumi.StringOutput
	ManagedResourceGroupName pulumi.StringOutput
	NetworkConfig            NetworkConfig
}

// NetworkConfig bundles the identifiers of the spoke network resources.
type NetworkConfig struct {
	VnetID          pulumi.StringOutput
	PrivateSubnetID pulumi.StringOutput
	PublicSubnetID  pulumi.StringOutput
}

type WorkspaceArgs struct {
	// Required. Team owning the workspace; part of every resource name.
	TeamName string

	// Required. Azure region for all resources.
	Location string

	// Required. Subscription hosting the workspace.
	SubscriptionID string

	// Required. Address space of the spoke network, prefix /16 or shorter.
	SpokeCidr string

	// Optional. Hub network to peer the spoke with. No peering resource is
	// declared when unset.
	HubVnetID pulumi.StringInput

	// Optional. Workspace pricing tier. Default: premium
	SkuTier string

	// Optional. Expose the workspace on the public network. Default: false
	EnablePublicAccess bool

	// Optional. Environment name; part of every resource name and the
	// environment tag. Default: dev
	Environment string

	// Optional. Value of the cost-center tag. Default: unassigned
	CostCenter string

	// Optional. Value of the data-classification tag; omitted when empty.
	DataClassification string

	// Optional. Extra tags. Compliance tags win on key collisions.
	Tags map[string]string
}

// NewWorkspace validates the request and declares the full resource set:
// resource group, spoke network, optional hub peering and the managed
// workspace. Nothing is declared when validation fails.
func NewWorkspace(ctx *pulumi.Context, name string, args *WorkspaceArgs, opts ...pulumi.ResourceOption) (*Workspace, error) {
	if args == nil {
		return nil, invalidArgument("missing one or more required workspace arguments")
	}
	if args.TeamName == "" {
		return nil, invalidArgument("must be provided 'TeamName'")
	}
	if args.Location == "" {
		return nil, invalidArgument("must be provided 'Location'")
	}
	if args.SubscriptionID == "" {
		return nil, invalidArgument("must be provided 'SubscriptionID'")
	}
	if args.SpokeCidr == "" {
		return nil, invalidArgument("must be provided 'SpokeCidr'")
	}

	norm := setDefaults(*args)

	plan, err := planNetwork(norm.SpokeCidr)
	if err != nil {
		return nil, err
	}

	tags := pulumi.ToStringMap(complianceTags(&norm))

	w := &Workspace{}
	if err := ctx.RegisterComponentResource("azure-data-comp:databricks:Workspace", name, w, opts...); err != nil {
		return nil, err
	}

	rgName := resourceGroupName(norm.TeamName, norm.Environment)
	rg, err := resources.NewResourceGroup(ctx, "rg-"+name, &resources.ResourceGroupArgs{
		Location:          pulumi.String(norm.Location),
		ResourceGroupName: pulumi.String(rgName),
		Tags:              tags,
	}, pulumi.Parent(w))
	if err != nil {
		return nil, provisionFailed("resource group "+rgName, err)
	}

	net, err := provisionNetwork(ctx, name, &norm, plan, tags, rg, w)
	if err != nil {
		return nil, err
	}

	if norm.HubVnetID != nil {
		if _, err := provisionPeering(ctx, name, &norm, rg, net.Vnet, w); err != nil {
			return nil, err
		}
	} else {
		_ = ctx.Log.Debug("no hub network supplied, skipping peering for "+rgName, nil)
	}

	dbwName := workspaceName(norm.TeamName, norm.Environment)
	mrgName := managedResourceGroupName(norm.TeamName, norm.Environment)
	ws, err := databricks.NewWorkspace(ctx, "dbw-"+name, &databricks.WorkspaceArgs{
		Location:               pulumi.String(norm.Location),
		ManagedResourceGroupId: pulumi.String(managedResourceGroupID(norm.SubscriptionID, norm.TeamName, norm.Environment)),
		Parameters: &databricks.WorkspaceCustomParametersArgs{
			CustomPrivateSubnetName: &databricks.WorkspaceCustomStringParameterArgs{
				Value: pulumi.String(PrivateSubnetName),
			},
			CustomPublicSubnetName: &databricks.WorkspaceCustomStringParameterArgs{
				Value: pulumi.String(PublicSubnetName),
			},
			CustomVirtualNetworkId: &databricks.WorkspaceCustomStringParameterArgs{
				Value: net.Vnet.ID(),
			},
			EnableNoPublicIp: &databricks.WorkspaceCustomBooleanParameterArgs{
				Value: pulumi.Bool(!norm.EnablePublicAccess),
			},
		},
		PublicNetworkAccess: pulumi.String(publicNetworkAccess(norm.EnablePublicAccess)),
		RequiredNsgRules:    pulumi.String(requiredNsgRules(norm.EnablePublicAccess)),
		ResourceGroupName:   rg.Name,
		Sku: &databricks.SkuArgs{
			Name: pulumi.String(norm.SkuTier),
		},
		Tags:          tags,
		WorkspaceName: pulumi.String(dbwName),
	}, pulumi.Parent(w), pulumi.DependsOn([]pulumi.Resource{net.PrivateSubnet, net.PublicSubnet}))
	if err != nil {
		return nil, provisionFailed("workspace "+dbwName, err)
	}

	w.WorkspaceURL = ws.WorkspaceUrl
	w.WorkspaceID = ws.ID().ToStringOutput()
	w.WorkspaceName = ws.Name
	w.ResourceGroupName = rg.Name
	w.ManagedResourceGroupName = pulumi.String(mrgName).ToStringOutput()
	w.NetworkConfig = NetworkConfig{
		VnetID:          net.Vnet.ID().ToStringOutput(),
		PrivateSubnetID: net.PrivateSubnet.ID().ToStringOutput(),
		PublicSubnetID:  net.PublicSubnet.ID().ToStringOutput(),
	}

	if err := ctx.RegisterResourceOutputs(w, pulumi.Map{
		"workspaceUrl":             w.WorkspaceURL,
		"workspaceId":              w.WorkspaceID,
		"workspaceName":            w.WorkspaceName,
		"resourceGroupName":        w.ResourceGroupName,
		"managedResourceGroupName": w.ManagedResourceGroupName,
		"networkConfig": pulumi.Map{
			"vnetId":          w.NetworkConfig.VnetID,
			"privateSubnetId": w.NetworkConfig.PrivateSubnetID,
			"publicSubnetId":  w.NetworkConfig.PublicSubnetID,
		},
	}); err != nil {
		return nil, err
	}

	return w, nil
}

func setDefaults(args WorkspaceArgs) WorkspaceArgs {
	if args.SkuTier == "" {
		args.SkuTier = DefaultSkuTier
	}
	if args.Environment == "" {
		args.Environment = DefaultEnvironment
	}
	if args.CostCenter == "" {
		args.CostCenter = DefaultCostCenter
	}
	return args
}

func publicNetworkAccess(enabled bool) string {
	if enabled {
		return "Enabled"
	}
	return "Disabled"
}

func requiredNsgRules(enabled bool) string {
	if enabled {
		return "AllRules"
	}
	return "NoRules"
}
