package workspace

import (
	network "github.com/pulumi/pulumi-azure-native-sdk/network/v2"
	resources "github.com/pulumi/pulumi-azure-native-sdk/resources/v2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// provisionPeering declares the one-way peering from the spoke network to
// the hub. The spoke never routes through a hub-provided gateway, so gateway
// transit and remote gateways stay off.
func provisionPeering(ctx *pulumi.Context, name string, args *WorkspaceArgs, rg *resources.ResourceGroup, vnet *network.VirtualNetwork, parent pulumi.Resource) (*network.VirtualNetworkPeering, error) {
	peerName := peeringName(args.TeamName, args.Environment)
	peer, err := network.NewVirtualNetworkPeering(ctx, "peer-"+name, &network.VirtualNetworkPeeringArgs{
		AllowForwardedTraffic:     pulumi.Bool(true),
		AllowGatewayTransit:       pulumi.Bool(false),
		AllowVirtualNetworkAccess: pulumi.Bool(true),
		RemoteVirtualNetwork: &network.SubResourceArgs{
			Id: args.HubVnetID.ToStringOutput(),
		},
		ResourceGroupName:         rg.Name,
		UseRemoteGateways:         pulumi.Bool(false),
		VirtualNetworkName:        vnet.Name,
		VirtualNetworkPeeringName: pulumi.String(peerName),
	}, pulumi.Parent(parent))
	if err != nil {
		return nil, provisionFailed("peering "+peerName, err)
	}
	return peer, nil
}
