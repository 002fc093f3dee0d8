// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: casa.proto

package casapb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	CasaExecutor_Tclean_FullMethodName              = "/casa.CasaExecutor/Tclean"
	CasaExecutor_Gaincal_FullMethodName             = "/casa.CasaExecutor/Gaincal"
	CasaExecutor_Applycal_FullMethodName            = "/casa.CasaExecutor/Applycal"
	CasaExecutor_Clearcal_FullMethodName            = "/casa.CasaExecutor/Clearcal"
	CasaExecutor_Flagmanager_FullMethodName         = "/casa.CasaExecutor/Flagmanager"
	CasaExecutor_GetImage_FullMethodName            = "/casa.CasaExecutor/GetImage"
	CasaExecutor_CopyProducts_FullMethodName        = "/casa.CasaExecutor/CopyProducts"
	CasaExecutor_CaltableFlagRows_FullMethodName    = "/casa.CasaExecutor/CaltableFlagRows"
	CasaExecutor_ApparentSensitivity_FullMethodName = "/casa.CasaExecutor/ApparentSensitivity"
	CasaExecutor_Fields_FullMethodName              = "/casa.CasaExecutor/Fields"
	CasaExecutor_ScansForField_FullMethodName       = "/casa.CasaExecutor/ScansForField"
	CasaExecutor_SpwsForScan_FullMethodName         = "/casa.CasaExecutor/SpwsForScan"
	CasaExecutor_TimesForScan_FullMethodName        = "/casa.CasaExecutor/TimesForScan"
	CasaExecutor_ExposureTime_FullMethodName        = "/casa.CasaExecutor/ExposureTime"
	CasaExecutor_AntennaNames_FullMethodName        = "/casa.CasaExecutor/AntennaNames"
	CasaExecutor_AntennaOffsets_FullMethodName      = "/casa.CasaExecutor/AntennaOffsets"
	CasaExecutor_FieldIdsForScans_FullMethodName    = "/casa.CasaExecutor/FieldIdsForScans"
	CasaExecutor_SpwProperties_FullMethodName       = "/casa.CasaExecutor/SpwProperties"
)

// CasaExecutorClient is the client API for CasaExecutor service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type CasaExecutorClient interface {
	// Imaging and calibration.
	Tclean(ctx context.Context, in *TcleanRequest, opts ...grpc.CallOption) (*TcleanResponse, error)
	Gaincal(ctx context.Context, in *GaincalRequest, opts ...grpc.CallOption) (*GaincalResponse, error)
	Applycal(ctx context.Context, in *ApplycalRequest, opts ...grpc.CallOption) (*ApplycalResponse, error)
	Clearcal(ctx context.Context, in *ClearcalRequest, opts ...grpc.CallOption) (*ClearcalResponse, error)
	Flagmanager(ctx context.Context, in *FlagmanagerRequest, opts ...grpc.CallOption) (*FlagmanagerResponse, error)
	// Image and caltable access.
	GetImage(ctx context.Context, in *GetImageRequest, opts ...grpc.CallOption) (*GetImageResponse, error)
	CopyProducts(ctx context.Context, in *CopyProductsRequest, opts ...grpc.CallOption) (*CopyProductsResponse, error)
	CaltableFlagRows(ctx context.Context, in *CaltableFlagRowsRequest, opts ...grpc.CallOption) (*CaltableFlagRowsResponse, error)
	// Sensitivity.
	ApparentSensitivity(ctx context.Context, in *ApparentSensitivityRequest, opts ...grpc.CallOption) (*ApparentSensitivityResponse, error)
	// Measurement-set metadata, read-only.
	Fields(ctx context.Context, in *FieldsRequest, opts ...grpc.CallOption) (*FieldsResponse, error)
	ScansForField(ctx context.Context, in *ScansForFieldRequest, opts ...grpc.CallOption) (*ScansForFieldResponse, error)
	SpwsForScan(ctx context.Context, in *SpwsForScanRequest, opts ...grpc.CallOption) (*SpwsForScanResponse, error)
	TimesForScan(ctx context.Context, in *TimesForScanRequest, opts ...grpc.CallOption) (*TimesForScanResponse, error)
	ExposureTime(ctx context.Context, in *ExposureTimeRequest, opts ...grpc.CallOption) (*ExposureTimeResponse, error)
	AntennaNames(ctx context.Context, in *AntennaNamesRequest, opts ...grpc.CallOption) (*AntennaNamesResponse, error)
	AntennaOffsets(ctx context.Context, in *AntennaOffsetsRequest, opts ...grpc.CallOption) (*AntennaOffsetsResponse, error)
	FieldIdsForScans(ctx context.Context, in *FieldIdsForScansRequest, opts ...grpc.CallOption) (*FieldIdsForScansResponse, error)
	SpwProperties(ctx context.Context, in *SpwPropertiesRequest, opts ...grpc.CallOption) (*SpwPropertiesResponse, error)
}

type casaExecutorClient struct {
	cc grpc.ClientConnInterface
}

func NewCasaExecutorClient(cc grpc.ClientConnInterface) CasaExecutorClient {
	return &casaExecutorClient{cc}
}

func (c *casaExecutorClient) Tclean(ctx context.Context, in *TcleanRequest, opts ...grpc.CallOption) (*TcleanResponse, error) {
	out := new(TcleanResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_Tclean_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) Gaincal(ctx context.Context, in *GaincalRequest, opts ...grpc.CallOption) (*GaincalResponse, error) {
	out := new(GaincalResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_Gaincal_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) Applycal(ctx context.Context, in *ApplycalRequest, opts ...grpc.CallOption) (*ApplycalResponse, error) {
	out := new(ApplycalResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_Applycal_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) Clearcal(ctx context.Context, in *ClearcalRequest, opts ...grpc.CallOption) (*ClearcalResponse, error) {
	out := new(ClearcalResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_Clearcal_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) Flagmanager(ctx context.Context, in *FlagmanagerRequest, opts ...grpc.CallOption) (*FlagmanagerResponse, error) {
	out := new(FlagmanagerResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_Flagmanager_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) GetImage(ctx context.Context, in *GetImageRequest, opts ...grpc.CallOption) (*GetImageResponse, error) {
	out := new(GetImageResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_GetImage_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) CopyProducts(ctx context.Context, in *CopyProductsRequest, opts ...grpc.CallOption) (*CopyProductsResponse, error) {
	out := new(CopyProductsResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_CopyProducts_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) CaltableFlagRows(ctx context.Context, in *CaltableFlagRowsRequest, opts ...grpc.CallOption) (*CaltableFlagRowsResponse, error) {
	out := new(CaltableFlagRowsResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_CaltableFlagRows_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) ApparentSensitivity(ctx context.Context, in *ApparentSensitivityRequest, opts ...grpc.CallOption) (*ApparentSensitivityResponse, error) {
	out := new(ApparentSensitivityResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_ApparentSensitivity_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) Fields(ctx context.Context, in *FieldsRequest, opts ...grpc.CallOption) (*FieldsResponse, error) {
	out := new(FieldsResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_Fields_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) ScansForField(ctx context.Context, in *ScansForFieldRequest, opts ...grpc.CallOption) (*ScansForFieldResponse, error) {
	out := new(ScansForFieldResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_ScansForField_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) SpwsForScan(ctx context.Context, in *SpwsForScanRequest, opts ...grpc.CallOption) (*SpwsForScanResponse, error) {
	out := new(SpwsForScanResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_SpwsForScan_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) TimesForScan(ctx context.Context, in *TimesForScanRequest, opts ...grpc.CallOption) (*TimesForScanResponse, error) {
	out := new(TimesForScanResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_TimesForScan_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) ExposureTime(ctx context.Context, in *ExposureTimeRequest, opts ...grpc.CallOption) (*ExposureTimeResponse, error) {
	out := new(ExposureTimeResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_ExposureTime_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) AntennaNames(ctx context.Context, in *AntennaNamesRequest, opts ...grpc.CallOption) (*AntennaNamesResponse, error) {
	out := new(AntennaNamesResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_AntennaNames_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) AntennaOffsets(ctx context.Context, in *AntennaOffsetsRequest, opts ...grpc.CallOption) (*AntennaOffsetsResponse, error) {
	out := new(AntennaOffsetsResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_AntennaOffsets_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) FieldIdsForScans(ctx context.Context, in *FieldIdsForScansRequest, opts ...grpc.CallOption) (*FieldIdsForScansResponse, error) {
	out := new(FieldIdsForScansResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_FieldIdsForScans_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *casaExecutorClient) SpwProperties(ctx context.Context, in *SpwPropertiesRequest, opts ...grpc.CallOption) (*SpwPropertiesResponse, error) {
	out := new(SpwPropertiesResponse)
	err := c.cc.Invoke(ctx, CasaExecutor_SpwProperties_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CasaExecutorServer is the server API for CasaExecutor service.
// All implementations must embed UnimplementedCasaExecutorServer
// for forward compatibility
type CasaExecutorServer interface {
	// Imaging and calibration.
	Tclean(context.Context, *TcleanRequest) (*TcleanResponse, error)
	Gaincal(context.Context, *GaincalRequest) (*GaincalResponse, error)
	Applycal(context.Context, *ApplycalRequest) (*ApplycalResponse, error)
	Clearcal(context.Context, *ClearcalRequest) (*ClearcalResponse, error)
	Flagmanager(context.Context, *FlagmanagerRequest) (*FlagmanagerResponse, error)
	// Image and caltable access.
	GetImage(context.Context, *GetImageRequest) (*GetImageResponse, error)
	CopyProducts(context.Context, *CopyProductsRequest) (*CopyProductsResponse, error)
	CaltableFlagRows(context.Context, *CaltableFlagRowsRequest) (*CaltableFlagRowsResponse, error)
	// Sensitivity.
	ApparentSensitivity(context.Context, *ApparentSensitivityRequest) (*ApparentSensitivityResponse, error)
	// Measurement-set metadata, read-only.
	Fields(context.Context, *FieldsRequest) (*FieldsResponse, error)
	ScansForField(context.Context, *ScansForFieldRequest) (*ScansForFieldResponse, error)
	SpwsForScan(context.Context, *SpwsForScanRequest) (*SpwsForScanResponse, error)
	TimesForScan(context.Context, *TimesForScanRequest) (*TimesForScanResponse, error)
	ExposureTime(context.Context, *ExposureTimeRequest) (*ExposureTimeResponse, error)
	AntennaNames(context.Context, *AntennaNamesRequest) (*AntennaNamesResponse, error)
	AntennaOffsets(context.Context, *AntennaOffsetsRequest) (*AntennaOffsetsResponse, error)
	FieldIdsForScans(context.Context, *FieldIdsForScansRequest) (*FieldIdsForScansResponse, error)
	SpwProperties(context.Context, *SpwPropertiesRequest) (*SpwPropertiesResponse, error)
	mustEmbedUnimplementedCasaExecutorServer()
}

// UnimplementedCasaExecutorServer must be embedded to have forward compatible implementations.
type UnimplementedCasaExecutorServer struct {
}

func (UnimplementedCasaExecutorServer) Tclean(context.Context, *TcleanRequest) (*TcleanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Tclean not implemented")
}
func (UnimplementedCasaExecutorServer) Gaincal(context.Context, *GaincalRequest) (*GaincalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Gaincal not implemented")
}
func (UnimplementedCasaExecutorServer) Applycal(context.Context, *ApplycalRequest) (*ApplycalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Applycal not implemented")
}
func (UnimplementedCasaExecutorServer) Clearcal(context.Context, *ClearcalRequest) (*ClearcalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Clearcal not implemented")
}
func (UnimplementedCasaExecutorServer) Flagmanager(context.Context, *FlagmanagerRequest) (*FlagmanagerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Flagmanager not implemented")
}
func (UnimplementedCasaExecutorServer) GetImage(context.Context, *GetImageRequest) (*GetImageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetImage not implemented")
}
func (UnimplementedCasaExecutorServer) CopyProducts(context.Context, *CopyProductsRequest) (*CopyProductsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CopyProducts not implemented")
}
func (UnimplementedCasaExecutorServer) CaltableFlagRows(context.Context, *CaltableFlagRowsRequest) (*CaltableFlagRowsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CaltableFlagRows not implemented")
}
func (UnimplementedCasaExecutorServer) ApparentSensitivity(context.Context, *ApparentSensitivityRequest) (*ApparentSensitivityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApparentSensitivity not implemented")
}
func (UnimplementedCasaExecutorServer) Fields(context.Context, *FieldsRequest) (*FieldsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Fields not implemented")
}
func (UnimplementedCasaExecutorServer) ScansForField(context.Context, *ScansForFieldRequest) (*ScansForFieldResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScansForField not implemented")
}
func (UnimplementedCasaExecutorServer) SpwsForScan(context.Context, *SpwsForScanRequest) (*SpwsForScanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SpwsForScan not implemented")
}
func (UnimplementedCasaExecutorServer) TimesForScan(context.Context, *TimesForScanRequest) (*TimesForScanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TimesForScan not implemented")
}
func (UnimplementedCasaExecutorServer) ExposureTime(context.Context, *ExposureTimeRequest) (*ExposureTimeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExposureTime not implemented")
}
func (UnimplementedCasaExecutorServer) AntennaNames(context.Context, *AntennaNamesRequest) (*AntennaNamesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AntennaNames not implemented")
}
func (UnimplementedCasaExecutorServer) AntennaOffsets(context.Context, *AntennaOffsetsRequest) (*AntennaOffsetsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AntennaOffsets not implemented")
}
func (UnimplementedCasaExecutorServer) FieldIdsForScans(context.Context, *FieldIdsForScansRequest) (*FieldIdsForScansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FieldIdsForScans not implemented")
}
func (UnimplementedCasaExecutorServer) SpwProperties(context.Context, *SpwPropertiesRequest) (*SpwPropertiesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SpwProperties not implemented")
}
func (UnimplementedCasaExecutorServer) mustEmbedUnimplementedCasaExecutorServer() {}

// UnsafeCasaExecutorServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CasaExecutorServer will
// result in compilation errors.
type UnsafeCasaExecutorServer interface {
	mustEmbedUnimplementedCasaExecutorServer()
}

func RegisterCasaExecutorServer(s grpc.ServiceRegistrar, srv CasaExecutorServer) {
	s.RegisterService(&CasaExecutor_ServiceDesc, srv)
}

func _CasaExecutor_Tclean_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TcleanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).Tclean(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_Tclean_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).Tclean(ctx, req.(*TcleanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_Gaincal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GaincalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).Gaincal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_Gaincal_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).Gaincal(ctx, req.(*GaincalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_Applycal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApplycalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).Applycal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_Applycal_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).Applycal(ctx, req.(*ApplycalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_Clearcal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClearcalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).Clearcal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_Clearcal_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).Clearcal(ctx, req.(*ClearcalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_Flagmanager_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FlagmanagerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).Flagmanager(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_Flagmanager_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).Flagmanager(ctx, req.(*FlagmanagerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_GetImage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetImageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).GetImage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_GetImage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).GetImage(ctx, req.(*GetImageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_CopyProducts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CopyProductsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).CopyProducts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_CopyProducts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).CopyProducts(ctx, req.(*CopyProductsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_CaltableFlagRows_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CaltableFlagRowsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).CaltableFlagRows(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_CaltableFlagRows_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).CaltableFlagRows(ctx, req.(*CaltableFlagRowsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_ApparentSensitivity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApparentSensitivityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).ApparentSensitivity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_ApparentSensitivity_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).ApparentSensitivity(ctx, req.(*ApparentSensitivityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_Fields_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FieldsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).Fields(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_Fields_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).Fields(ctx, req.(*FieldsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_ScansForField_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScansForFieldRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).ScansForField(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_ScansForField_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).ScansForField(ctx, req.(*ScansForFieldRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_SpwsForScan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SpwsForScanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).SpwsForScan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_SpwsForScan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).SpwsForScan(ctx, req.(*SpwsForScanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_TimesForScan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TimesForScanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).TimesForScan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_TimesForScan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).TimesForScan(ctx, req.(*TimesForScanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_ExposureTime_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExposureTimeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).ExposureTime(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_ExposureTime_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).ExposureTime(ctx, req.(*ExposureTimeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_AntennaNames_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AntennaNamesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).AntennaNames(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_AntennaNames_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).AntennaNames(ctx, req.(*AntennaNamesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_AntennaOffsets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AntennaOffsetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).AntennaOffsets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_AntennaOffsets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).AntennaOffsets(ctx, req.(*AntennaOffsetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_FieldIdsForScans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FieldIdsForScansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).FieldIdsForScans(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_FieldIdsForScans_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).FieldIdsForScans(ctx, req.(*FieldIdsForScansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CasaExecutor_SpwProperties_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SpwPropertiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CasaExecutorServer).SpwProperties(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CasaExecutor_SpwProperties_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CasaExecutorServer).SpwProperties(ctx, req.(*SpwPropertiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CasaExecutor_ServiceDesc is the grpc.ServiceDesc for CasaExecutor service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CasaExecutor_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "casa.CasaExecutor",
	HandlerType: (*CasaExecutorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Tclean",
			Handler:    _CasaExecutor_Tclean_Handler,
		},
		{
			MethodName: "Gaincal",
			Handler:    _CasaExecutor_Gaincal_Handler,
		},
		{
			MethodName: "Applycal",
			Handler:    _CasaExecutor_Applycal_Handler,
		},
		{
			MethodName: "Clearcal",
			Handler:    _CasaExecutor_Clearcal_Handler,
		},
		{
			MethodName: "Flagmanager",
			Handler:    _CasaExecutor_Flagmanager_Handler,
		},
		{
			MethodName: "GetImage",
			Handler:    _CasaExecutor_GetImage_Handler,
		},
		{
			MethodName: "CopyProducts",
			Handler:    _CasaExecutor_CopyProducts_Handler,
		},
		{
			MethodName: "CaltableFlagRows",
			Handler:    _CasaExecutor_CaltableFlagRows_Handler,
		},
		{
			MethodName: "ApparentSensitivity",
			Handler:    _CasaExecutor_ApparentSensitivity_Handler,
		},
		{
			MethodName: "Fields",
			Handler:    _CasaExecutor_Fields_Handler,
		},
		{
			MethodName: "ScansForField",
			Handler:    _CasaExecutor_ScansForField_Handler,
		},
		{
			MethodName: "SpwsForScan",
			Handler:    _CasaExecutor_SpwsForScan_Handler,
		},
		{
			MethodName: "TimesForScan",
			Handler:    _CasaExecutor_TimesForScan_Handler,
		},
		{
			MethodName: "ExposureTime",
			Handler:    _CasaExecutor_ExposureTime_Handler,
		},
		{
			MethodName: "AntennaNames",
			Handler:    _CasaExecutor_AntennaNames_Handler,
		},
		{
			MethodName: "AntennaOffsets",
			Handler:    _CasaExecutor_AntennaOffsets_Handler,
		},
		{
			MethodName: "FieldIdsForScans",
			Handler:    _CasaExecutor_FieldIdsForScans_Handler,
		},
		{
			MethodName: "SpwProperties",
			Handler:    _CasaExecutor_SpwProperties_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "casa.proto",
}
