package workspace

import (
	"fmt"
	"strconv"
	"strings"

	network "github.com/pulumi/pulumi-azure-native-sdk/network/v2"
	resources "github.com/pulumi/pulumi-azure-native-sdk/resources/v2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// databricksDelegation is the service both workspace subnets are handed
// over to.
const databricksDelegation = "Microsoft.Databricks/workspaces"

// networkPlan holds the address ranges carved out of the spoke CIDR.
type networkPlan struct {
	SpokeCidr         string
	PrivateSubnetCidr string
	PublicSubnetCidr  string
}

// planNetwork derives two /24 subnet ranges from the first two octets of
// the spoke address. The spoke prefix must be /16 or shorter, otherwise the
// derived ranges would fall outside the spoke's address space.
func planNetwork(spokeCidr string) (networkPlan, error) {
	parts := strings.Split(spokeCidr, "/")
	if len(parts) != 2 {
		return networkPlan{}, invalidArgument(fmt.Sprintf("spoke CIDR %q must be of the form <address>/<prefix>", spokeCidr))
	}
	prefix, err := strconv.Atoi(parts[1])
	if err != nil || prefix < 0 || prefix > 32 {
		return networkPlan{}, invalidArgument(fmt.Sprintf("spoke CIDR %q has an invalid prefix length", spokeCidr))
	}
	octets := strings.Split(parts[0], ".")
	if len(octets) != 4 {
		return networkPlan{}, invalidArgument(fmt.Sprintf("spoke CIDR %q must have four dot-separated octets", spokeCidr))
	}
	for _, o := range octets {
		n, err := strconv.Atoi(o)
		if err != nil || n < 0 || n > 255 {
			return networkPlan{}, invalidArgument(fmt.Sprintf("spoke CIDR %q has an invalid octet %q", spokeCidr, o))
		}
	}
	if prefix > 16 {
		return networkPlan{}, invalidArgument(fmt.Sprintf("spoke CIDR %q is too small, two /24 subnets need a /16 or shorter prefix", spokeCidr))
	}
	return networkPlan{
		SpokeCidr:         spokeCidr,
		PrivateSubnetCidr: fmt.Sprintf("%s.%s.0.0/24", octets[0], octets[1]),
		PublicSubnetCidr:  fmt.Sprintf("%s.%s.1.0/24", octets[0], octets[1]),
	}, nil
}

type networkResult struct {
	Vnet          *network.VirtualNetwork
	PrivateSubnet *network.Subnet
	PublicSubnet  *network.Subnet
}

// provisionNetwork declares the spoke virtual network, one network security
// group per subnet, and the two delegated subnets. The security groups carry
// no rules of their own; rule management is deferred to the managed
// workspace service and platform defaults.
func provisionNetwork(ctx *pulumi.Context, name string, args *WorkspaceArgs, plan networkPlan, tags pulumi.StringMapInput, rg *resources.ResourceGroup, parent pulumi.Resource) (*networkResult, error) {
	vnetName := virtualNetworkName(args.TeamName, args.Environment)
	vnet, err := network.NewVirtualNetwork(ctx, "vnet-"+name, &network.VirtualNetworkArgs{
		AddressSpace: &network.AddressSpaceArgs{
			AddressPrefixes: pulumi.StringArray{pulumi.String(plan.SpokeCidr)},
		},
		Location:           pulumi.String(args.Location),
		ResourceGroupName:  rg.Name,
		Tags:               tags,
		VirtualNetworkName: pulumi.String(vnetName),
	}, pulumi.Parent(parent))
	if err != nil {
		return nil, provisionFailed("virtual network "+vnetName, err)
	}

	privateNsgName := networkSecurityGroupName("private", args.TeamName, args.Environment)
	privateNsg, err := network.NewNetworkSecurityGroup(ctx, "nsg-private-"+name, &network.NetworkSecurityGroupArgs{
		Location:                 pulumi.String(args.Location),
		NetworkSecurityGroupName: pulumi.String(privateNsgName),
		ResourceGroupName:        rg.Name,
		Tags:                     tags,
	}, pulumi.Parent(parent))
	if err != nil {
		return nil, provisionFailed("network security group "+privateNsgName, err)
	}

	publicNsgName := networkSecurityGroupName("public", args.TeamName, args.Environment)
	publicNsg, err := network.NewNetworkSecurityGroup(ctx, "nsg-public-"+name, &network.NetworkSecurityGroupArgs{
		Location:                 pulumi.String(args.Location),
		NetworkSecurityGroupName: pulumi.String(publicNsgName),
		ResourceGroupName:        rg.Name,
		Tags:                     tags,
	}, pulumi.Parent(parent))
	if err != nil {
		return nil, provisionFailed("network security group "+publicNsgName, err)
	}

	private, err := network.NewSubnet(ctx, "snet-private-"+name, &network.SubnetArgs{
		AddressPrefix: pulumi.String(plan.PrivateSubnetCidr),
		Delegations: network.DelegationArray{
			&network.DelegationArgs{
				Name:        pulumi.String(PrivateSubnetName),
				ServiceName: pulumi.String(databricksDelegation),
			},
		},
		NetworkSecurityGroup: &network.NetworkSecurityGroupTypeArgs{
			Id: privateNsg.ID(),
		},
		ResourceGroupName:  rg.Name,
		SubnetName:         pulumi.String(PrivateSubnetName),
		VirtualNetworkName: vnet.Name,
	}, pulumi.Parent(parent))
	if err != nil {
		return nil, provisionFailed("subnet "+PrivateSubnetName, err)
	}

	// ordering is not functionally required, it keeps creation deterministic
	public, err := network.NewSubnet(ctx, "snet-public-"+name, &network.SubnetArgs{
		AddressPrefix: pulumi.String(plan.PublicSubnetCidr),
		Delegations: network.DelegationArray{
			&network.DelegationArgs{
				Name:        pulumi.String(PublicSubnetName),
				ServiceName: pulumi.String(databricksDelegation),
			},
		},
		NetworkSecurityGroup: &network.NetworkSecurityGroupTypeArgs{
			Id: publicNsg.ID(),
		},
		ResourceGroupName:  rg.Name,
		SubnetName:         pulumi.String(PublicSubnetName),
		VirtualNetworkName: vnet.Name,
	}, pulumi.Parent(parent), pulumi.DependsOn([]pulumi.Resource{private}))
	if err != nil {
		return nil, provisionFailed("subnet "+PublicSubnetName, err)
	}

	return &networkResult{Vnet: vnet, PrivateSubnet: private, PublicSubnet: public}, nil
}
