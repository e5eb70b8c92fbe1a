package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "journey.v1alpha1.JourneyService"

// Full method names
const (
	JourneyService_CreateCharacter_FullMethodName = "/" + ServiceName + "/CreateCharacter"
	JourneyService_GetCharacter_FullMethodName    = "/" + ServiceName + "/GetCharacter"
	JourneyService_ListStages_FullMethodName      = "/" + ServiceName + "/ListStages"
	JourneyService_Fight_FullMethodName           = "/" + ServiceName + "/Fight"
	JourneyService_GetCombat_FullMethodName       = "/" + ServiceName + "/GetCombat"
	JourneyService_ListCombats_FullMethodName     = "/" + ServiceName + "/ListCombats"
	JourneyService_GetTraining_FullMethodName     = "/" + ServiceName + "/GetTraining"
	JourneyService_StartTraining_FullMethodName   = "/" + ServiceName + "/StartTraining"
	JourneyService_ClaimTraining_FullMethodName   = "/" + ServiceName + "/ClaimTraining"
	JourneyService_GetRanking_FullMethodName      = "/" + ServiceName + "/GetRanking"
)

// JourneyServiceServer is the server API for JourneyService
type JourneyServiceServer interface {
	// CreateCharacter creates a level 1 character
	CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error)
	// GetCharacter returns a character with its derived stats
	GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error)
	// ListStages returns the stage catalog
	ListStages(context.Context, *ListStagesRequest) (*ListStagesResponse, error)
	// Fight fights a stage and applies the outcome
	Fight(context.Context, *FightRequest) (*FightResponse, error)
	// GetCombat returns an archived fight with its action log
	GetCombat(context.Context, *GetCombatRequest) (*GetCombatResponse, error)
	// ListCombats returns a character's recent fights
	ListCombats(context.Context, *ListCombatsRequest) (*ListCombatsResponse, error)
	// GetTraining returns the active training session
	GetTraining(context.Context, *GetTrainingRequest) (*GetTrainingResponse, error)
	// StartTraining starts training a stat
	StartTraining(context.Context, *StartTrainingRequest) (*StartTrainingResponse, error)
	// ClaimTraining claims accrued training points
	ClaimTraining(context.Context, *ClaimTrainingRequest) (*ClaimTrainingResponse, error)
	// GetRanking returns the leaderboard
	GetRanking(context.Context, *GetRankingRequest) (*GetRankingResponse, error)
}

// UnimplementedJourneyServiceServer can be embedded to stay forward compatible
type UnimplementedJourneyServiceServer struct{}

func (UnimplementedJourneyServiceServer) CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCharacter not implemented")
}

func (UnimplementedJourneyServiceServer) GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCharacter not implemented")
}

func (UnimplementedJourneyServiceServer) ListStages(context.Context, *ListStagesRequest) (*ListStagesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListStages not implemented")
}

func (UnimplementedJourneyServiceServer) Fight(context.Context, *FightRequest) (*FightResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Fight not implemented")
}

func (UnimplementedJourneyServiceServer) GetCombat(context.Context, *GetCombatRequest) (*GetCombatResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCombat not implemented")
}

func (UnimplementedJourneyServiceServer) ListCombats(context.Context, *ListCombatsRequest) (*ListCombatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCombats not implemented")
}

func (UnimplementedJourneyServiceServer) GetTraining(context.Context, *GetTrainingRequest) (*GetTrainingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTraining not implemented")
}

func (UnimplementedJourneyServiceServer) StartTraining(context.Context, *StartTrainingRequest) (*StartTrainingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartTraining not implemented")
}

func (UnimplementedJourneyServiceServer) ClaimTraining(context.Context, *ClaimTrainingRequest) (*ClaimTrainingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClaimTraining not implemented")
}

func (UnimplementedJourneyServiceServer) GetRanking(context.Context, *GetRankingRequest) (*GetRankingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRanking not implemented")
}

// RegisterJourneyServiceServer registers srv on s
func RegisterJourneyServiceServer(s grpc.ServiceRegistrar, srv JourneyServiceServer) {
	s.RegisterService(&JourneyService_ServiceDesc, srv)
}

func _JourneyService_CreateCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).CreateCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JourneyService_CreateCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JourneyServiceServer).CreateCharacter(ctx, req.(*CreateCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JourneyService_GetCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).GetCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JourneyService_GetCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JourneyServiceServer).GetCharacter(ctx, req.(*GetCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JourneyService_ListStages_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListStagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).ListStages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JourneyService_ListStages_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JourneyServiceServer).ListStages(ctx, req.(*ListStagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JourneyService_Fight_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(FightRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).Fight(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JourneyService_Fight_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JourneyServiceServer).Fight(ctx, req.(*FightRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JourneyService_GetCombat_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetCombatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).GetCombat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JourneyService_GetCombat_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JourneyServiceServer).GetCombat(ctx, req.(*GetCombatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JourneyService_ListCombats_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListCombatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).ListCombats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JourneyService_ListCombats_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JourneyServiceServer).ListCombats(ctx, req.(*ListCombatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JourneyService_GetTraining_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetTrainingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).GetTraining(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JourneyService_GetTraining_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JourneyServiceServer).GetTraining(ctx, req.(*GetTrainingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JourneyService_StartTraining_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StartTrainingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).StartTraining(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JourneyService_StartTraining_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JourneyServiceServer).StartTraining(ctx, req.(*StartTrainingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JourneyService_ClaimTraining_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ClaimTrainingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).ClaimTraining(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JourneyService_ClaimTraining_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JourneyServiceServer).ClaimTraining(ctx, req.(*ClaimTrainingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JourneyService_GetRanking_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetRankingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JourneyServiceServer).GetRanking(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JourneyService_GetRanking_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JourneyServiceServer).GetRanking(ctx, req.(*GetRankingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// JourneyService_ServiceDesc describes JourneyService for grpc.Server.
// Messages are plain structs carried by the JSON codec.
var JourneyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*JourneyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateCharacter",
			Handler:    _JourneyService_CreateCharacter_Handler,
		},
		{
			MethodName: "GetCharacter",
			Handler:    _JourneyService_GetCharacter_Handler,
		},
		{
			MethodName: "ListStages",
			Handler:    _JourneyService_ListStages_Handler,
		},
		{
			MethodName: "Fight",
			Handler:    _JourneyService_Fight_Handler,
		},
		{
			MethodName: "GetCombat",
			Handler:    _JourneyService_GetCombat_Handler,
		},
		{
			MethodName: "ListCombats",
			Handler:    _JourneyService_ListCombats_Handler,
		},
		{
			MethodName: "GetTraining",
			Handler:    _JourneyService_GetTraining_Handler,
		},
		{
			MethodName: "StartTraining",
			Handler:    _JourneyService_StartTraining_Handler,
		},
		{
			MethodName: "ClaimTraining",
			Handler:    _JourneyService_ClaimTraining_Handler,
		},
		{
			MethodName: "GetRanking",
			Handler:    _JourneyService_GetRanking_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "journey/v1alpha1/journey.json",
}

// JourneyServiceClient is the client API for JourneyService
type JourneyServiceClient interface {
	CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error)
	GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error)
	ListStages(ctx context.Context, in *ListStagesRequest, opts ...grpc.CallOption) (*ListStagesResponse, error)
	Fight(ctx context.Context, in *FightRequest, opts ...grpc.CallOption) (*FightResponse, error)
	GetCombat(ctx context.Context, in *GetCombatRequest, opts ...grpc.CallOption) (*GetCombatResponse, error)
	ListCombats(ctx context.Context, in *ListCombatsRequest, opts ...grpc.CallOption) (*ListCombatsResponse, error)
	GetTraining(ctx context.Context, in *GetTrainingRequest, opts ...grpc.CallOption) (*GetTrainingResponse, error)
	StartTraining(ctx context.Context, in *StartTrainingRequest, opts ...grpc.CallOption) (*StartTrainingResponse, error)
	ClaimTraining(ctx context.Context, in *ClaimTrainingRequest, opts ...grpc.CallOption) (*ClaimTrainingResponse, error)
	GetRanking(ctx context.Context, in *GetRankingRequest, opts ...grpc.CallOption) (*GetRankingResponse, error)
}

type journeyServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewJourneyServiceClient returns a client that always calls with the JSON codec
func NewJourneyServiceClient(cc grpc.ClientConnInterface) JourneyServiceClient {
	return &journeyServiceClient{cc: cc}
}

func (c *journeyServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *journeyServiceClient) CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error) {
	out := new(CreateCharacterResponse)
	if err := c.invoke(ctx, JourneyService_CreateCharacter_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journeyServiceClient) GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error) {
	out := new(GetCharacterResponse)
	if err := c.invoke(ctx, JourneyService_GetCharacter_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journeyServiceClient) ListStages(ctx context.Context, in *ListStagesRequest, opts ...grpc.CallOption) (*ListStagesResponse, error) {
	out := new(ListStagesResponse)
	if err := c.invoke(ctx, JourneyService_ListStages_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journeyServiceClient) Fight(ctx context.Context, in *FightRequest, opts ...grpc.CallOption) (*FightResponse, error) {
	out := new(FightResponse)
	if err := c.invoke(ctx, JourneyService_Fight_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journeyServiceClient) GetCombat(ctx context.Context, in *GetCombatRequest, opts ...grpc.CallOption) (*GetCombatResponse, error) {
	out := new(GetCombatResponse)
	if err := c.invoke(ctx, JourneyService_GetCombat_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journeyServiceClient) ListCombats(ctx context.Context, in *ListCombatsRequest, opts ...grpc.CallOption) (*ListCombatsResponse, error) {
	out := new(ListCombatsResponse)
	if err := c.invoke(ctx, JourneyService_ListCombats_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journeyServiceClient) GetTraining(ctx context.Context, in *GetTrainingRequest, opts ...grpc.CallOption) (*GetTrainingResponse, error) {
	out := new(GetTrainingResponse)
	if err := c.invoke(ctx, JourneyService_GetTraining_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journeyServiceClient) StartTraining(ctx context.Context, in *StartTrainingRequest, opts ...grpc.CallOption) (*StartTrainingResponse, error) {
	out := new(StartTrainingResponse)
	if err := c.invoke(ctx, JourneyService_StartTraining_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journeyServiceClient) ClaimTraining(ctx context.Context, in *ClaimTrainingRequest, opts ...grpc.CallOption) (*ClaimTrainingResponse, error) {
	out := new(ClaimTrainingResponse)
	if err := c.invoke(ctx, JourneyService_ClaimTraining_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journeyServiceClient) GetRanking(ctx context.Context, in *GetRankingRequest, opts ...grpc.CallOption) (*GetRankingResponse, error) {
	out := new(GetRankingResponse)
	if err := c.invoke(ctx, JourneyService_GetRanking_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
