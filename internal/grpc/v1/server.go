// Package v1 отдаёт классификатор медиа по gRPC.
//
// Описание сервиса объявлено вручную поверх google.protobuf.StringValue,
// поэтому сгенерированный код не нужен:
//
//	service Classifier {
//	  rpc Classify(google.protobuf.StringValue) returns (google.protobuf.StringValue);
//	}
package v1

import (
	"context"
	"time"

	"github.com/Totarae/MediaViewer/internal/service"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ClassifierServiceName = "mediaviewer.v1.Classifier"
	classifyFullMethod    = "/" + ClassifierServiceName + "/Classify"
)

// ClassifierServer серверная сторона сервиса Classifier.
type ClassifierServer interface {
	Classify(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// ClassifierServiceDesc описание сервиса для grpc.Server.RegisterService.
var ClassifierServiceDesc = grpc.ServiceDesc{
	ServiceName: ClassifierServiceName,
	HandlerType: (*ClassifierServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Classify", Handler: classifyHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mediaviewer/v1/classifier.proto",
}

func classifyHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClassifierServer).Classify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: classifyFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClassifierServer).Classify(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

type GRPCServer struct {
	Service *service.ViewerService
}

func NewGRPCServer(svc *service.ViewerService) *GRPCServer {
	return &GRPCServer{Service: svc}
}

// Classify возвращает "video" или "image" для переданной ссылки.
func (s *GRPCServer) Classify(_ context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	view, err := s.Service.Resolve(req.GetValue())
	if err != nil {
		if reqErr, ok := service.AsRequestError(err); ok {
			return nil, status.Error(codes.InvalidArgument, reqErr.Detail)
		}
		return nil, status.Errorf(codes.Internal, "classify: %v", err)
	}
	return wrapperspb.String(view.MediaType), nil
}

// NewServer собирает grpc.Server с классификатором и стандартным health-сервисом.
func NewServer(svc *service.ViewerService, logger *zap.Logger) *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor(logger)))

	srv.RegisterService(&ClassifierServiceDesc, NewGRPCServer(svc))

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ClassifierServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

func loggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Info("gRPC Request",
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)),
		)
		return resp, err
	}
}

// ClassifierClient клиент сервиса Classifier.
type ClassifierClient struct {
	cc grpc.ClientConnInterface
}

func NewClassifierClient(cc grpc.ClientConnInterface) *ClassifierClient {
	return &ClassifierClient{cc: cc}
}

// Classify вызывает удалённый классификатор.
func (c *ClassifierClient) Classify(ctx context.Context, mediaURL string, opts ...grpc.CallOption) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, classifyFullMethod, wrapperspb.String(mediaURL), out, opts...); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}
