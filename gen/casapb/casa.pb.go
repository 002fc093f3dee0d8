// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.0
// 	protoc        (unknown)
// source: casa.proto

package casapb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type TcleanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           []string               `protobuf:"bytes,1,rep,name=vis,proto3" json:"vis,omitempty"`
	Imagename     string                 `protobuf:"bytes,2,opt,name=imagename,proto3" json:"imagename,omitempty"`
	Field         string                 `protobuf:"bytes,3,opt,name=field,proto3" json:"field,omitempty"`
	Spw           string                 `protobuf:"bytes,4,opt,name=spw,proto3" json:"spw,omitempty"`
	Uvrange       string                 `protobuf:"bytes,5,opt,name=uvrange,proto3" json:"uvrange,omitempty"`
	ThresholdJy   float64                `protobuf:"fixed64,6,opt,name=threshold_jy,json=thresholdJy,proto3" json:"threshold_jy,omitempty"`
	Nsigma        float64                `protobuf:"fixed64,7,opt,name=nsigma,proto3" json:"nsigma,omitempty"`
	Niter         int64                  `protobuf:"varint,8,opt,name=niter,proto3" json:"niter,omitempty"`
	Gain          float64                `protobuf:"fixed64,9,opt,name=gain,proto3" json:"gain,omitempty"`
	Nterms        int32                  `protobuf:"varint,10,opt,name=nterms,proto3" json:"nterms,omitempty"`
	Gridder       string                 `protobuf:"bytes,11,opt,name=gridder,proto3" json:"gridder,omitempty"`
	Robust        float64                `protobuf:"fixed64,12,opt,name=robust,proto3" json:"robust,omitempty"`
	Savemodel     string                 `protobuf:"bytes,13,opt,name=savemodel,proto3" json:"savemodel,omitempty"` // "" | "modelcolumn"
	Parallel      bool                   `protobuf:"varint,14,opt,name=parallel,proto3" json:"parallel,omitempty"`
	Usemask       string                 `protobuf:"bytes,15,opt,name=usemask,proto3" json:"usemask,omitempty"`
	Startmodel    string                 `protobuf:"bytes,16,opt,name=startmodel,proto3" json:"startmodel,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TcleanRequest) Reset() {
	*x = TcleanRequest{}
	mi := &file_casa_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TcleanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TcleanRequest) ProtoMessage() {}

func (x *TcleanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TcleanRequest.ProtoReflect.Descriptor instead.
func (*TcleanRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{0}
}

func (x *TcleanRequest) GetVis() []string {
	if x != nil {
		return x.Vis
	}
	return nil
}

func (x *TcleanRequest) GetImagename() string {
	if x != nil {
		return x.Imagename
	}
	return ""
}

func (x *TcleanRequest) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *TcleanRequest) GetSpw() string {
	if x != nil {
		return x.Spw
	}
	return ""
}

func (x *TcleanRequest) GetUvrange() string {
	if x != nil {
		return x.Uvrange
	}
	return ""
}

func (x *TcleanRequest) GetThresholdJy() float64 {
	if x != nil {
		return x.ThresholdJy
	}
	return 0
}

func (x *TcleanRequest) GetNsigma() float64 {
	if x != nil {
		return x.Nsigma
	}
	return 0
}

func (x *TcleanRequest) GetNiter() int64 {
	if x != nil {
		return x.Niter
	}
	return 0
}

func (x *TcleanRequest) GetGain() float64 {
	if x != nil {
		return x.Gain
	}
	return 0
}

func (x *TcleanRequest) GetNterms() int32 {
	if x != nil {
		return x.Nterms
	}
	return 0
}

func (x *TcleanRequest) GetGridder() string {
	if x != nil {
		return x.Gridder
	}
	return ""
}

func (x *TcleanRequest) GetRobust() float64 {
	if x != nil {
		return x.Robust
	}
	return 0
}

func (x *TcleanRequest) GetSavemodel() string {
	if x != nil {
		return x.Savemodel
	}
	return ""
}

func (x *TcleanRequest) GetParallel() bool {
	if x != nil {
		return x.Parallel
	}
	return false
}

func (x *TcleanRequest) GetUsemask() string {
	if x != nil {
		return x.Usemask
	}
	return ""
}

func (x *TcleanRequest) GetStartmodel() string {
	if x != nil {
		return x.Startmodel
	}
	return ""
}

type TcleanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Iterdone      int64                  `protobuf:"varint,1,opt,name=iterdone,proto3" json:"iterdone,omitempty"`
	Stopcode      int32                  `protobuf:"varint,2,opt,name=stopcode,proto3" json:"stopcode,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TcleanResponse) Reset() {
	*x = TcleanResponse{}
	mi := &file_casa_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TcleanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TcleanResponse) ProtoMessage() {}

func (x *TcleanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TcleanResponse.ProtoReflect.Descriptor instead.
func (*TcleanResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{1}
}

func (x *TcleanResponse) GetIterdone() int64 {
	if x != nil {
		return x.Iterdone
	}
	return 0
}

func (x *TcleanResponse) GetStopcode() int32 {
	if x != nil {
		return x.Stopcode
	}
	return 0
}

type GaincalRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           string                 `protobuf:"bytes,1,opt,name=vis,proto3" json:"vis,omitempty"`
	Caltable      string                 `protobuf:"bytes,2,opt,name=caltable,proto3" json:"caltable,omitempty"`
	Field         string                 `protobuf:"bytes,3,opt,name=field,proto3" json:"field,omitempty"`
	Spw           string                 `protobuf:"bytes,4,opt,name=spw,proto3" json:"spw,omitempty"`
	Refant        string                 `protobuf:"bytes,5,opt,name=refant,proto3" json:"refant,omitempty"`
	Gaintype      string                 `protobuf:"bytes,6,opt,name=gaintype,proto3" json:"gaintype,omitempty"` // "G" | "T"
	Calmode       string                 `protobuf:"bytes,7,opt,name=calmode,proto3" json:"calmode,omitempty"`   // "p" | "ap"
	Solint        string                 `protobuf:"bytes,8,opt,name=solint,proto3" json:"solint,omitempty"`
	Minsnr        float64                `protobuf:"fixed64,9,opt,name=minsnr,proto3" json:"minsnr,omitempty"`
	Combine       string                 `protobuf:"bytes,10,opt,name=combine,proto3" json:"combine,omitempty"` // "", "spw", "scan", "scan,spw"
	Gaintable     []string               `protobuf:"bytes,11,rep,name=gaintable,proto3" json:"gaintable,omitempty"`
	Spwmap        []int32                `protobuf:"varint,12,rep,packed,name=spwmap,proto3" json:"spwmap,omitempty"`
	Interp        []string               `protobuf:"bytes,13,rep,name=interp,proto3" json:"interp,omitempty"`
	Append        bool                   `protobuf:"varint,14,opt,name=append,proto3" json:"append,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GaincalRequest) Reset() {
	*x = GaincalRequest{}
	mi := &file_casa_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GaincalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GaincalRequest) ProtoMessage() {}

func (x *GaincalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GaincalRequest.ProtoReflect.Descriptor instead.
func (*GaincalRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{2}
}

func (x *GaincalRequest) GetVis() string {
	if x != nil {
		return x.Vis
	}
	return ""
}

func (x *GaincalRequest) GetCaltable() string {
	if x != nil {
		return x.Caltable
	}
	return ""
}

func (x *GaincalRequest) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *GaincalRequest) GetSpw() string {
	if x != nil {
		return x.Spw
	}
	return ""
}

func (x *GaincalRequest) GetRefant() string {
	if x != nil {
		return x.Refant
	}
	return ""
}

func (x *GaincalRequest) GetGaintype() string {
	if x != nil {
		return x.Gaintype
	}
	return ""
}

func (x *GaincalRequest) GetCalmode() string {
	if x != nil {
		return x.Calmode
	}
	return ""
}

func (x *GaincalRequest) GetSolint() string {
	if x != nil {
		return x.Solint
	}
	return ""
}

func (x *GaincalRequest) GetMinsnr() float64 {
	if x != nil {
		return x.Minsnr
	}
	return 0
}

func (x *GaincalRequest) GetCombine() string {
	if x != nil {
		return x.Combine
	}
	return ""
}

func (x *GaincalRequest) GetGaintable() []string {
	if x != nil {
		return x.Gaintable
	}
	return nil
}

func (x *GaincalRequest) GetSpwmap() []int32 {
	if x != nil {
		return x.Spwmap
	}
	return nil
}

func (x *GaincalRequest) GetInterp() []string {
	if x != nil {
		return x.Interp
	}
	return nil
}

func (x *GaincalRequest) GetAppend() bool {
	if x != nil {
		return x.Append
	}
	return false
}

type GaincalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GaincalResponse) Reset() {
	*x = GaincalResponse{}
	mi := &file_casa_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GaincalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GaincalResponse) ProtoMessage() {}

func (x *GaincalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GaincalResponse.ProtoReflect.Descriptor instead.
func (*GaincalResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{3}
}

type ApplycalRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           string                 `protobuf:"bytes,1,opt,name=vis,proto3" json:"vis,omitempty"`
	Field         string                 `protobuf:"bytes,2,opt,name=field,proto3" json:"field,omitempty"`
	Spw           string                 `protobuf:"bytes,3,opt,name=spw,proto3" json:"spw,omitempty"`
	Gaintable     []string               `protobuf:"bytes,4,rep,name=gaintable,proto3" json:"gaintable,omitempty"`
	Interp        []string               `protobuf:"bytes,5,rep,name=interp,proto3" json:"interp,omitempty"`
	Spwmap        []*SpwMapList          `protobuf:"bytes,6,rep,name=spwmap,proto3" json:"spwmap,omitempty"`
	Applymode     string                 `protobuf:"bytes,7,opt,name=applymode,proto3" json:"applymode,omitempty"` // "calflag" | "calonly"
	Calwt         bool                   `protobuf:"varint,8,opt,name=calwt,proto3" json:"calwt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplycalRequest) Reset() {
	*x = ApplycalRequest{}
	mi := &file_casa_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplycalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplycalRequest) ProtoMessage() {}

func (x *ApplycalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplycalRequest.ProtoReflect.Descriptor instead.
func (*ApplycalRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{4}
}

func (x *ApplycalRequest) GetVis() string {
	if x != nil {
		return x.Vis
	}
	return ""
}

func (x *ApplycalRequest) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *ApplycalRequest) GetSpw() string {
	if x != nil {
		return x.Spw
	}
	return ""
}

func (x *ApplycalRequest) GetGaintable() []string {
	if x != nil {
		return x.Gaintable
	}
	return nil
}

func (x *ApplycalRequest) GetInterp() []string {
	if x != nil {
		return x.Interp
	}
	return nil
}

func (x *ApplycalRequest) GetSpwmap() []*SpwMapList {
	if x != nil {
		return x.Spwmap
	}
	return nil
}

func (x *ApplycalRequest) GetApplymode() string {
	if x != nil {
		return x.Applymode
	}
	return ""
}

func (x *ApplycalRequest) GetCalwt() bool {
	if x != nil {
		return x.Calwt
	}
	return false
}

type SpwMapList struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Map           []int32                `protobuf:"varint,1,rep,packed,name=map,proto3" json:"map,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpwMapList) Reset() {
	*x = SpwMapList{}
	mi := &file_casa_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpwMapList) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpwMapList) ProtoMessage() {}

func (x *SpwMapList) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpwMapList.ProtoReflect.Descriptor instead.
func (*SpwMapList) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{5}
}

func (x *SpwMapList) GetMap() []int32 {
	if x != nil {
		return x.Map
	}
	return nil
}

type ApplycalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplycalResponse) Reset() {
	*x = ApplycalResponse{}
	mi := &file_casa_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplycalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplycalResponse) ProtoMessage() {}

func (x *ApplycalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplycalResponse.ProtoReflect.Descriptor instead.
func (*ApplycalResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{6}
}

type ClearcalRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           string                 `protobuf:"bytes,1,opt,name=vis,proto3" json:"vis,omitempty"`
	Field         string                 `protobuf:"bytes,2,opt,name=field,proto3" json:"field,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearcalRequest) Reset() {
	*x = ClearcalRequest{}
	mi := &file_casa_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearcalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearcalRequest) ProtoMessage() {}

func (x *ClearcalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearcalRequest.ProtoReflect.Descriptor instead.
func (*ClearcalRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{7}
}

func (x *ClearcalRequest) GetVis() string {
	if x != nil {
		return x.Vis
	}
	return ""
}

func (x *ClearcalRequest) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

type ClearcalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearcalResponse) Reset() {
	*x = ClearcalResponse{}
	mi := &file_casa_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearcalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearcalResponse) ProtoMessage() {}

func (x *ClearcalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearcalResponse.ProtoReflect.Descriptor instead.
func (*ClearcalResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{8}
}

type FlagmanagerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           string                 `protobuf:"bytes,1,opt,name=vis,proto3" json:"vis,omitempty"`
	Mode          string                 `protobuf:"bytes,2,opt,name=mode,proto3" json:"mode,omitempty"` // "save" | "restore" | "delete"
	Versionname   string                 `protobuf:"bytes,3,opt,name=versionname,proto3" json:"versionname,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FlagmanagerRequest) Reset() {
	*x = FlagmanagerRequest{}
	mi := &file_casa_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FlagmanagerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FlagmanagerRequest) ProtoMessage() {}

func (x *FlagmanagerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FlagmanagerRequest.ProtoReflect.Descriptor instead.
func (*FlagmanagerRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{9}
}

func (x *FlagmanagerRequest) GetVis() string {
	if x != nil {
		return x.Vis
	}
	return ""
}

func (x *FlagmanagerRequest) GetMode() string {
	if x != nil {
		return x.Mode
	}
	return ""
}

func (x *FlagmanagerRequest) GetVersionname() string {
	if x != nil {
		return x.Versionname
	}
	return ""
}

type FlagmanagerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FlagmanagerResponse) Reset() {
	*x = FlagmanagerResponse{}
	mi := &file_casa_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FlagmanagerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FlagmanagerResponse) ProtoMessage() {}

func (x *FlagmanagerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FlagmanagerResponse.ProtoReflect.Descriptor instead.
func (*FlagmanagerResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{10}
}

type GetImageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Imagename     string                 `protobuf:"bytes,1,opt,name=imagename,proto3" json:"imagename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetImageRequest) Reset() {
	*x = GetImageRequest{}
	mi := &file_casa_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetImageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetImageRequest) ProtoMessage() {}

func (x *GetImageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetImageRequest.ProtoReflect.Descriptor instead.
func (*GetImageRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{11}
}

func (x *GetImageRequest) GetImagename() string {
	if x != nil {
		return x.Imagename
	}
	return ""
}

type GetImageResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Nx              int32                  `protobuf:"varint,1,opt,name=nx,proto3" json:"nx,omitempty"`
	Ny              int32                  `protobuf:"varint,2,opt,name=ny,proto3" json:"ny,omitempty"`
	Image           []float64              `protobuf:"fixed64,3,rep,packed,name=image,proto3" json:"image,omitempty"`
	Residual        []float64              `protobuf:"fixed64,4,rep,packed,name=residual,proto3" json:"residual,omitempty"`
	Mask            []float64              `protobuf:"fixed64,5,rep,packed,name=mask,proto3" json:"mask,omitempty"`
	BeamMajorArcsec float64                `protobuf:"fixed64,6,opt,name=beam_major_arcsec,json=beamMajorArcsec,proto3" json:"beam_major_arcsec,omitempty"`
	BeamMinorArcsec float64                `protobuf:"fixed64,7,opt,name=beam_minor_arcsec,json=beamMinorArcsec,proto3" json:"beam_minor_arcsec,omitempty"`
	BeamPaDeg       float64                `protobuf:"fixed64,8,opt,name=beam_pa_deg,json=beamPaDeg,proto3" json:"beam_pa_deg,omitempty"`
	CellArcsec      float64                `protobuf:"fixed64,9,opt,name=cell_arcsec,json=cellArcsec,proto3" json:"cell_arcsec,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetImageResponse) Reset() {
	*x = GetImageResponse{}
	mi := &file_casa_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetImageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetImageResponse) ProtoMessage() {}

func (x *GetImageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetImageResponse.ProtoReflect.Descriptor instead.
func (*GetImageResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{12}
}

func (x *GetImageResponse) GetNx() int32 {
	if x != nil {
		return x.Nx
	}
	return 0
}

func (x *GetImageResponse) GetNy() int32 {
	if x != nil {
		return x.Ny
	}
	return 0
}

func (x *GetImageResponse) GetImage() []float64 {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *GetImageResponse) GetResidual() []float64 {
	if x != nil {
		return x.Residual
	}
	return nil
}

func (x *GetImageResponse) GetMask() []float64 {
	if x != nil {
		return x.Mask
	}
	return nil
}

func (x *GetImageResponse) GetBeamMajorArcsec() float64 {
	if x != nil {
		return x.BeamMajorArcsec
	}
	return 0
}

func (x *GetImageResponse) GetBeamMinorArcsec() float64 {
	if x != nil {
		return x.BeamMinorArcsec
	}
	return 0
}

func (x *GetImageResponse) GetBeamPaDeg() float64 {
	if x != nil {
		return x.BeamPaDeg
	}
	return 0
}

func (x *GetImageResponse) GetCellArcsec() float64 {
	if x != nil {
		return x.CellArcsec
	}
	return 0
}

type CopyProductsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Source        string                 `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Dest          string                 `protobuf:"bytes,2,opt,name=dest,proto3" json:"dest,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CopyProductsRequest) Reset() {
	*x = CopyProductsRequest{}
	mi := &file_casa_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CopyProductsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CopyProductsRequest) ProtoMessage() {}

func (x *CopyProductsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CopyProductsRequest.ProtoReflect.Descriptor instead.
func (*CopyProductsRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{13}
}

func (x *CopyProductsRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *CopyProductsRequest) GetDest() string {
	if x != nil {
		return x.Dest
	}
	return ""
}

type CopyProductsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CopyProductsResponse) Reset() {
	*x = CopyProductsResponse{}
	mi := &file_casa_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CopyProductsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CopyProductsResponse) ProtoMessage() {}

func (x *CopyProductsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CopyProductsResponse.ProtoReflect.Descriptor instead.
func (*CopyProductsResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{14}
}

type CaltableFlagRowsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caltable      string                 `protobuf:"bytes,1,opt,name=caltable,proto3" json:"caltable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CaltableFlagRowsRequest) Reset() {
	*x = CaltableFlagRowsRequest{}
	mi := &file_casa_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CaltableFlagRowsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CaltableFlagRowsRequest) ProtoMessage() {}

func (x *CaltableFlagRowsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CaltableFlagRowsRequest.ProtoReflect.Descriptor instead.
func (*CaltableFlagRowsRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{15}
}

func (x *CaltableFlagRowsRequest) GetCaltable() string {
	if x != nil {
		return x.Caltable
	}
	return ""
}

type CaltableFlagRowsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rows          []*CaltableRow         `protobuf:"bytes,1,rep,name=rows,proto3" json:"rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CaltableFlagRowsResponse) Reset() {
	*x = CaltableFlagRowsResponse{}
	mi := &file_casa_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CaltableFlagRowsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CaltableFlagRowsResponse) ProtoMessage() {}

func (x *CaltableFlagRowsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CaltableFlagRowsResponse.ProtoReflect.Descriptor instead.
func (*CaltableFlagRowsResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{16}
}

func (x *CaltableFlagRowsResponse) GetRows() []*CaltableRow {
	if x != nil {
		return x.Rows
	}
	return nil
}

type CaltableRow struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SpwId         int32                  `protobuf:"varint,1,opt,name=spw_id,json=spwId,proto3" json:"spw_id,omitempty"`
	Antenna       string                 `protobuf:"bytes,2,opt,name=antenna,proto3" json:"antenna,omitempty"`
	Flagged       bool                   `protobuf:"varint,3,opt,name=flagged,proto3" json:"flagged,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CaltableRow) Reset() {
	*x = CaltableRow{}
	mi := &file_casa_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CaltableRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CaltableRow) ProtoMessage() {}

func (x *CaltableRow) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CaltableRow.ProtoReflect.Descriptor instead.
func (*CaltableRow) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{17}
}

func (x *CaltableRow) GetSpwId() int32 {
	if x != nil {
		return x.SpwId
	}
	return 0
}

func (x *CaltableRow) GetAntenna() string {
	if x != nil {
		return x.Antenna
	}
	return ""
}

func (x *CaltableRow) GetFlagged() bool {
	if x != nil {
		return x.Flagged
	}
	return false
}

type ApparentSensitivityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           []string               `protobuf:"bytes,1,rep,name=vis,proto3" json:"vis,omitempty"`
	Spw           map[string]string      `protobuf:"bytes,2,rep,name=spw,proto3" json:"spw,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"` // per-vis spw selection
	Field         string                 `protobuf:"bytes,3,opt,name=field,proto3" json:"field,omitempty"`
	Robust        float64                `protobuf:"fixed64,4,opt,name=robust,proto3" json:"robust,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApparentSensitivityRequest) Reset() {
	*x = ApparentSensitivityRequest{}
	mi := &file_casa_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApparentSensitivityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApparentSensitivityRequest) ProtoMessage() {}

func (x *ApparentSensitivityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApparentSensitivityRequest.ProtoReflect.Descriptor instead.
func (*ApparentSensitivityRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{18}
}

func (x *ApparentSensitivityRequest) GetVis() []string {
	if x != nil {
		return x.Vis
	}
	return nil
}

func (x *ApparentSensitivityRequest) GetSpw() map[string]string {
	if x != nil {
		return x.Spw
	}
	return nil
}

func (x *ApparentSensitivityRequest) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *ApparentSensitivityRequest) GetRobust() float64 {
	if x != nil {
		return x.Robust
	}
	return 0
}

type ApparentSensitivityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JyPerBeam     float64                `protobuf:"fixed64,1,opt,name=jy_per_beam,json=jyPerBeam,proto3" json:"jy_per_beam,omitempty"`
	BandwidthHz   float64                `protobuf:"fixed64,2,opt,name=bandwidth_hz,json=bandwidthHz,proto3" json:"bandwidth_hz,omitempty"`
	RefFreqHz     float64                `protobuf:"fixed64,3,opt,name=ref_freq_hz,json=refFreqHz,proto3" json:"ref_freq_hz,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApparentSensitivityResponse) Reset() {
	*x = ApparentSensitivityResponse{}
	mi := &file_casa_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApparentSensitivityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApparentSensitivityResponse) ProtoMessage() {}

func (x *ApparentSensitivityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApparentSensitivityResponse.ProtoReflect.Descriptor instead.
func (*ApparentSensitivityResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{19}
}

func (x *ApparentSensitivityResponse) GetJyPerBeam() float64 {
	if x != nil {
		return x.JyPerBeam
	}
	return 0
}

func (x *ApparentSensitivityResponse) GetBandwidthHz() float64 {
	if x != nil {
		return x.BandwidthHz
	}
	return 0
}

func (x *ApparentSensitivityResponse) GetRefFreqHz() float64 {
	if x != nil {
		return x.RefFreqHz
	}
	return 0
}

type FieldsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           string                 `protobuf:"bytes,1,opt,name=vis,proto3" json:"vis,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldsRequest) Reset() {
	*x = FieldsRequest{}
	mi := &file_casa_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldsRequest) ProtoMessage() {}

func (x *FieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldsRequest.ProtoReflect.Descriptor instead.
func (*FieldsRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{20}
}

func (x *FieldsRequest) GetVis() string {
	if x != nil {
		return x.Vis
	}
	return ""
}

type FieldsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Names         []string               `protobuf:"bytes,1,rep,name=names,proto3" json:"names,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldsResponse) Reset() {
	*x = FieldsResponse{}
	mi := &file_casa_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldsResponse) ProtoMessage() {}

func (x *FieldsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldsResponse.ProtoReflect.Descriptor instead.
func (*FieldsResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{21}
}

func (x *FieldsResponse) GetNames() []string {
	if x != nil {
		return x.Names
	}
	return nil
}

type ScansForFieldRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           string                 `protobuf:"bytes,1,opt,name=vis,proto3" json:"vis,omitempty"`
	Field         string                 `protobuf:"bytes,2,opt,name=field,proto3" json:"field,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScansForFieldRequest) Reset() {
	*x = ScansForFieldRequest{}
	mi := &file_casa_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScansForFieldRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScansForFieldRequest) ProtoMessage() {}

func (x *ScansForFieldRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScansForFieldRequest.ProtoReflect.Descriptor instead.
func (*ScansForFieldRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{22}
}

func (x *ScansForFieldRequest) GetVis() string {
	if x != nil {
		return x.Vis
	}
	return ""
}

func (x *ScansForFieldRequest) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

type ScansForFieldResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scans         []int32                `protobuf:"varint,1,rep,packed,name=scans,proto3" json:"scans,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScansForFieldResponse) Reset() {
	*x = ScansForFieldResponse{}
	mi := &file_casa_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScansForFieldResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScansForFieldResponse) ProtoMessage() {}

func (x *ScansForFieldResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScansForFieldResponse.ProtoReflect.Descriptor instead.
func (*ScansForFieldResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{23}
}

func (x *ScansForFieldResponse) GetScans() []int32 {
	if x != nil {
		return x.Scans
	}
	return nil
}

type SpwsForScanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           string                 `protobuf:"bytes,1,opt,name=vis,proto3" json:"vis,omitempty"`
	Scan          int32                  `protobuf:"varint,2,opt,name=scan,proto3" json:"scan,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpwsForScanRequest) Reset() {
	*x = SpwsForScanRequest{}
	mi := &file_casa_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpwsForScanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpwsForScanRequest) ProtoMessage() {}

func (x *SpwsForScanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpwsForScanRequest.ProtoReflect.Descriptor instead.
func (*SpwsForScanRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{24}
}

func (x *SpwsForScanRequest) GetVis() string {
	if x != nil {
		return x.Vis
	}
	return ""
}

func (x *SpwsForScanRequest) GetScan() int32 {
	if x != nil {
		return x.Scan
	}
	return 0
}

type SpwsForScanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Spws          []int32                `protobuf:"varint,1,rep,packed,name=spws,proto3" json:"spws,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpwsForScanResponse) Reset() {
	*x = SpwsForScanResponse{}
	mi := &file_casa_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpwsForScanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpwsForScanResponse) ProtoMessage() {}

func (x *SpwsForScanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpwsForScanResponse.ProtoReflect.Descriptor instead.
func (*SpwsForScanResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{25}
}

func (x *SpwsForScanResponse) GetSpws() []int32 {
	if x != nil {
		return x.Spws
	}
	return nil
}

type TimesForScanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           string                 `protobuf:"bytes,1,opt,name=vis,proto3" json:"vis,omitempty"`
	Scan          int32                  `protobuf:"varint,2,opt,name=scan,proto3" json:"scan,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TimesForScanRequest) Reset() {
	*x = TimesForScanRequest{}
	mi := &file_casa_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TimesForScanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TimesForScanRequest) ProtoMessage() {}

func (x *TimesForScanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TimesForScanRequest.ProtoReflect.Descriptor instead.
func (*TimesForScanRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{26}
}

func (x *TimesForScanRequest) GetVis() string {
	if x != nil {
		return x.Vis
	}
	return ""
}

func (x *TimesForScanRequest) GetScan() int32 {
	if x != nil {
		return x.Scan
	}
	return 0
}

type TimesForScanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MjdSeconds    []float64              `protobuf:"fixed64,1,rep,packed,name=mjd_seconds,json=mjdSeconds,proto3" json:"mjd_seconds,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TimesForScanResponse) Reset() {
	*x = TimesForScanResponse{}
	mi := &file_casa_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TimesForScanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TimesForScanResponse) ProtoMessage() {}

func (x *TimesForScanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TimesForScanResponse.ProtoReflect.Descriptor instead.
func (*TimesForScanResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{27}
}

func (x *TimesForScanResponse) GetMjdSeconds() []float64 {
	if x != nil {
		return x.MjdSeconds
	}
	return nil
}

type ExposureTimeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           string                 `protobuf:"bytes,1,opt,name=vis,proto3" json:"vis,omitempty"`
	Scan          int32                  `protobuf:"varint,2,opt,name=scan,proto3" json:"scan,omitempty"`
	Spw           int32                  `protobuf:"varint,3,opt,name=spw,proto3" json:"spw,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExposureTimeRequest) Reset() {
	*x = ExposureTimeRequest{}
	mi := &file_casa_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExposureTimeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExposureTimeRequest) ProtoMessage() {}

func (x *ExposureTimeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExposureTimeRequest.ProtoReflect.Descriptor instead.
func (*ExposureTimeRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{28}
}

func (x *ExposureTimeRequest) GetVis() string {
	if x != nil {
		return x.Vis
	}
	return ""
}

func (x *ExposureTimeRequest) GetScan() int32 {
	if x != nil {
		return x.Scan
	}
	return 0
}

func (x *ExposureTimeRequest) GetSpw() int32 {
	if x != nil {
		return x.Spw
	}
	return 0
}

type ExposureTimeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Seconds       float64                `protobuf:"fixed64,1,opt,name=seconds,proto3" json:"seconds,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExposureTimeResponse) Reset() {
	*x = ExposureTimeResponse{}
	mi := &file_casa_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExposureTimeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExposureTimeResponse) ProtoMessage() {}

func (x *ExposureTimeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExposureTimeResponse.ProtoReflect.Descriptor instead.
func (*ExposureTimeResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{29}
}

func (x *ExposureTimeResponse) GetSeconds() float64 {
	if x != nil {
		return x.Seconds
	}
	return 0
}

type AntennaNamesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           string                 `protobuf:"bytes,1,opt,name=vis,proto3" json:"vis,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AntennaNamesRequest) Reset() {
	*x = AntennaNamesRequest{}
	mi := &file_casa_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AntennaNamesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AntennaNamesRequest) ProtoMessage() {}

func (x *AntennaNamesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AntennaNamesRequest.ProtoReflect.Descriptor instead.
func (*AntennaNamesRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{30}
}

func (x *AntennaNamesRequest) GetVis() string {
	if x != nil {
		return x.Vis
	}
	return ""
}

type AntennaNamesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Names         []string               `protobuf:"bytes,1,rep,name=names,proto3" json:"names,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AntennaNamesResponse) Reset() {
	*x = AntennaNamesResponse{}
	mi := &file_casa_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AntennaNamesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AntennaNamesResponse) ProtoMessage() {}

func (x *AntennaNamesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AntennaNamesResponse.ProtoReflect.Descriptor instead.
func (*AntennaNamesResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{31}
}

func (x *AntennaNamesResponse) GetNames() []string {
	if x != nil {
		return x.Names
	}
	return nil
}

type AntennaOffsetsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           string                 `protobuf:"bytes,1,opt,name=vis,proto3" json:"vis,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AntennaOffsetsRequest) Reset() {
	*x = AntennaOffsetsRequest{}
	mi := &file_casa_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AntennaOffsetsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AntennaOffsetsRequest) ProtoMessage() {}

func (x *AntennaOffsetsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AntennaOffsetsRequest.ProtoReflect.Descriptor instead.
func (*AntennaOffsetsRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{32}
}

func (x *AntennaOffsetsRequest) GetVis() string {
	if x != nil {
		return x.Vis
	}
	return ""
}

type AntennaOffsetsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Offsets       map[string]*Offset     `protobuf:"bytes,1,rep,name=offsets,proto3" json:"offsets,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AntennaOffsetsResponse) Reset() {
	*x = AntennaOffsetsResponse{}
	mi := &file_casa_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AntennaOffsetsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AntennaOffsetsResponse) ProtoMessage() {}

func (x *AntennaOffsetsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AntennaOffsetsResponse.ProtoReflect.Descriptor instead.
func (*AntennaOffsetsResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{33}
}

func (x *AntennaOffsetsResponse) GetOffsets() map[string]*Offset {
	if x != nil {
		return x.Offsets
	}
	return nil
}

type Offset struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Longitude     float64                `protobuf:"fixed64,1,opt,name=longitude,proto3" json:"longitude,omitempty"`
	Latitude      float64                `protobuf:"fixed64,2,opt,name=latitude,proto3" json:"latitude,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Offset) Reset() {
	*x = Offset{}
	mi := &file_casa_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Offset) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Offset) ProtoMessage() {}

func (x *Offset) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Offset.ProtoReflect.Descriptor instead.
func (*Offset) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{34}
}

func (x *Offset) GetLongitude() float64 {
	if x != nil {
		return x.Longitude
	}
	return 0
}

func (x *Offset) GetLatitude() float64 {
	if x != nil {
		return x.Latitude
	}
	return 0
}

type FieldIdsForScansRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           string                 `protobuf:"bytes,1,opt,name=vis,proto3" json:"vis,omitempty"`
	Scans         []int32                `protobuf:"varint,2,rep,packed,name=scans,proto3" json:"scans,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldIdsForScansRequest) Reset() {
	*x = FieldIdsForScansRequest{}
	mi := &file_casa_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldIdsForScansRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldIdsForScansRequest) ProtoMessage() {}

func (x *FieldIdsForScansRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldIdsForScansRequest.ProtoReflect.Descriptor instead.
func (*FieldIdsForScansRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{35}
}

func (x *FieldIdsForScansRequest) GetVis() string {
	if x != nil {
		return x.Vis
	}
	return ""
}

func (x *FieldIdsForScansRequest) GetScans() []int32 {
	if x != nil {
		return x.Scans
	}
	return nil
}

type FieldIdsForScansResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FieldIds      []int32                `protobuf:"varint,1,rep,packed,name=field_ids,json=fieldIds,proto3" json:"field_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldIdsForScansResponse) Reset() {
	*x = FieldIdsForScansResponse{}
	mi := &file_casa_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldIdsForScansResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldIdsForScansResponse) ProtoMessage() {}

func (x *FieldIdsForScansResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldIdsForScansResponse.ProtoReflect.Descriptor instead.
func (*FieldIdsForScansResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{36}
}

func (x *FieldIdsForScansResponse) GetFieldIds() []int32 {
	if x != nil {
		return x.FieldIds
	}
	return nil
}

type SpwPropertiesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vis           string                 `protobuf:"bytes,1,opt,name=vis,proto3" json:"vis,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpwPropertiesRequest) Reset() {
	*x = SpwPropertiesRequest{}
	mi := &file_casa_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpwPropertiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpwPropertiesRequest) ProtoMessage() {}

func (x *SpwPropertiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpwPropertiesRequest.ProtoReflect.Descriptor instead.
func (*SpwPropertiesRequest) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{37}
}

func (x *SpwPropertiesRequest) GetVis() string {
	if x != nil {
		return x.Vis
	}
	return ""
}

type SpwPropertiesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Spws          []*SpwProperty         `protobuf:"bytes,1,rep,name=spws,proto3" json:"spws,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpwPropertiesResponse) Reset() {
	*x = SpwPropertiesResponse{}
	mi := &file_casa_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpwPropertiesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpwPropertiesResponse) ProtoMessage() {}

func (x *SpwPropertiesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpwPropertiesResponse.ProtoReflect.Descriptor instead.
func (*SpwPropertiesResponse) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{38}
}

func (x *SpwPropertiesResponse) GetSpws() []*SpwProperty {
	if x != nil {
		return x.Spws
	}
	return nil
}

type SpwProperty struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SpwId         int32                  `protobuf:"varint,1,opt,name=spw_id,json=spwId,proto3" json:"spw_id,omitempty"`
	Band          string                 `protobuf:"bytes,2,opt,name=band,proto3" json:"band,omitempty"`
	BandwidthHz   float64                `protobuf:"fixed64,3,opt,name=bandwidth_hz,json=bandwidthHz,proto3" json:"bandwidth_hz,omitempty"`
	EffectiveBwHz float64                `protobuf:"fixed64,4,opt,name=effective_bw_hz,json=effectiveBwHz,proto3" json:"effective_bw_hz,omitempty"`
	MeanFreqHz    float64                `protobuf:"fixed64,5,opt,name=mean_freq_hz,json=meanFreqHz,proto3" json:"mean_freq_hz,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpwProperty) Reset() {
	*x = SpwProperty{}
	mi := &file_casa_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpwProperty) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpwProperty) ProtoMessage() {}

func (x *SpwProperty) ProtoReflect() protoreflect.Message {
	mi := &file_casa_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpwProperty.ProtoReflect.Descriptor instead.
func (*SpwProperty) Descriptor() ([]byte, []int) {
	return file_casa_proto_rawDescGZIP(), []int{39}
}

func (x *SpwProperty) GetSpwId() int32 {
	if x != nil {
		return x.SpwId
	}
	return 0
}

func (x *SpwProperty) GetBand() string {
	if x != nil {
		return x.Band
	}
	return ""
}

func (x *SpwProperty) GetBandwidthHz() float64 {
	if x != nil {
		return x.BandwidthHz
	}
	return 0
}

func (x *SpwProperty) GetEffectiveBwHz() float64 {
	if x != nil {
		return x.EffectiveBwHz
	}
	return 0
}

func (x *SpwProperty) GetMeanFreqHz() float64 {
	if x != nil {
		return x.MeanFreqHz
	}
	return 0
}

var File_casa_proto protoreflect.FileDescriptor

var file_casa_proto_rawDesc = []byte{
	0x0a, 0x0a, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x04, 0x63, 0x61,
	0x73, 0x61, 0x22, 0xa4, 0x03, 0x0a, 0x0d, 0x54, 0x63, 0x6c, 0x65, 0x61, 0x6e, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x10, 0x0a, 0x03, 0x76, 0x69, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28,
	0x09, 0x52, 0x03, 0x76, 0x69, 0x73, 0x12, 0x1c, 0x0a, 0x09, 0x69, 0x6d, 0x61, 0x67, 0x65, 0x6e,
	0x61, 0x6d, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x69, 0x6d, 0x61, 0x67, 0x65,
	0x6e, 0x61, 0x6d, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x66, 0x69, 0x65, 0x6c, 0x64, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x05, 0x66, 0x69, 0x65, 0x6c, 0x64, 0x12, 0x10, 0x0a, 0x03, 0x73, 0x70,
	0x77, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03, 0x73, 0x70, 0x77, 0x12, 0x18, 0x0a, 0x07,
	0x75, 0x76, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x75,
	0x76, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x12, 0x21, 0x0a, 0x0c, 0x74, 0x68, 0x72, 0x65, 0x73, 0x68,
	0x6f, 0x6c, 0x64, 0x5f, 0x6a, 0x79, 0x18, 0x06, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0b, 0x74, 0x68,
	0x72, 0x65, 0x73, 0x68, 0x6f, 0x6c, 0x64, 0x4a, 0x79, 0x12, 0x16, 0x0a, 0x06, 0x6e, 0x73, 0x69,
	0x67, 0x6d, 0x61, 0x18, 0x07, 0x20, 0x01, 0x28, 0x01, 0x52, 0x06, 0x6e, 0x73, 0x69, 0x67, 0x6d,
	0x61, 0x12, 0x14, 0x0a, 0x05, 0x6e, 0x69, 0x74, 0x65, 0x72, 0x18, 0x08, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x05, 0x6e, 0x69, 0x74, 0x65, 0x72, 0x12, 0x12, 0x0a, 0x04, 0x67, 0x61, 0x69, 0x6e, 0x18,
	0x09, 0x20, 0x01, 0x28, 0x01, 0x52, 0x04, 0x67, 0x61, 0x69, 0x6e, 0x12, 0x16, 0x0a, 0x06, 0x6e,
	0x74, 0x65, 0x72, 0x6d, 0x73, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x05, 0x52, 0x06, 0x6e, 0x74, 0x65,
	0x72, 0x6d, 0x73, 0x12, 0x18, 0x0a, 0x07, 0x67, 0x72, 0x69, 0x64, 0x64, 0x65, 0x72, 0x18, 0x0b,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x67, 0x72, 0x69, 0x64, 0x64, 0x65, 0x72, 0x12, 0x16, 0x0a,
	0x06, 0x72, 0x6f, 0x62, 0x75, 0x73, 0x74, 0x18, 0x0c, 0x20, 0x01, 0x28, 0x01, 0x52, 0x06, 0x72,
	0x6f, 0x62, 0x75, 0x73, 0x74, 0x12, 0x1c, 0x0a, 0x09, 0x73, 0x61, 0x76, 0x65, 0x6d, 0x6f, 0x64,
	0x65, 0x6c, 0x18, 0x0d, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73, 0x61, 0x76, 0x65, 0x6d, 0x6f,
	0x64, 0x65, 0x6c, 0x12, 0x1a, 0x0a, 0x08, 0x70, 0x61, 0x72, 0x61, 0x6c, 0x6c, 0x65, 0x6c, 0x18,
	0x0e, 0x20, 0x01, 0x28, 0x08, 0x52, 0x08, 0x70, 0x61, 0x72, 0x61, 0x6c, 0x6c, 0x65, 0x6c, 0x12,
	0x18, 0x0a, 0x07, 0x75, 0x73, 0x65, 0x6d, 0x61, 0x73, 0x6b, 0x18, 0x0f, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x07, 0x75, 0x73, 0x65, 0x6d, 0x61, 0x73, 0x6b, 0x12, 0x1e, 0x0a, 0x0a, 0x73, 0x74, 0x61,
	0x72, 0x74, 0x6d, 0x6f, 0x64, 0x65, 0x6c, 0x18, 0x10, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x73,
	0x74, 0x61, 0x72, 0x74, 0x6d, 0x6f, 0x64, 0x65, 0x6c, 0x22, 0x48, 0x0a, 0x0e, 0x54, 0x63, 0x6c,
	0x65, 0x61, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1a, 0x0a, 0x08, 0x69,
	0x74, 0x65, 0x72, 0x64, 0x6f, 0x6e, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x08, 0x69,
	0x74, 0x65, 0x72, 0x64, 0x6f, 0x6e, 0x65, 0x12, 0x1a, 0x0a, 0x08, 0x73, 0x74, 0x6f, 0x70, 0x63,
	0x6f, 0x64, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x08, 0x73, 0x74, 0x6f, 0x70, 0x63,
	0x6f, 0x64, 0x65, 0x22, 0xe4, 0x02, 0x0a, 0x0e, 0x47, 0x61, 0x69, 0x6e, 0x63, 0x61, 0x6c, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x10, 0x0a, 0x03, 0x76, 0x69, 0x73, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x03, 0x76, 0x69, 0x73, 0x12, 0x1a, 0x0a, 0x08, 0x63, 0x61, 0x6c, 0x74,
	0x61, 0x62, 0x6c, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x61, 0x6c, 0x74,
	0x61, 0x62, 0x6c, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x66, 0x69, 0x65, 0x6c, 0x64, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x05, 0x66, 0x69, 0x65, 0x6c, 0x64, 0x12, 0x10, 0x0a, 0x03, 0x73, 0x70,
	0x77, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03, 0x73, 0x70, 0x77, 0x12, 0x16, 0x0a, 0x06,
	0x72, 0x65, 0x66, 0x61, 0x6e, 0x74, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x72, 0x65,
	0x66, 0x61, 0x6e, 0x74, 0x12, 0x1a, 0x0a, 0x08, 0x67, 0x61, 0x69, 0x6e, 0x74, 0x79, 0x70, 0x65,
	0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x67, 0x61, 0x69, 0x6e, 0x74, 0x79, 0x70, 0x65,
	0x12, 0x18, 0x0a, 0x07, 0x63, 0x61, 0x6c, 0x6d, 0x6f, 0x64, 0x65, 0x18, 0x07, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x07, 0x63, 0x61, 0x6c, 0x6d, 0x6f, 0x64, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x6f,
	0x6c, 0x69, 0x6e, 0x74, 0x18, 0x08, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x6f, 0x6c, 0x69,
	0x6e, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x6d, 0x69, 0x6e, 0x73, 0x6e, 0x72, 0x18, 0x09, 0x20, 0x01,
	0x28, 0x01, 0x52, 0x06, 0x6d, 0x69, 0x6e, 0x73, 0x6e, 0x72, 0x12, 0x18, 0x0a, 0x07, 0x63, 0x6f,
	0x6d, 0x62, 0x69, 0x6e, 0x65, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x63, 0x6f, 0x6d,
	0x62, 0x69, 0x6e, 0x65, 0x12, 0x1c, 0x0a, 0x09, 0x67, 0x61, 0x69, 0x6e, 0x74, 0x61, 0x62, 0x6c,
	0x65, 0x18, 0x0b, 0x20, 0x03, 0x28, 0x09, 0x52, 0x09, 0x67, 0x61, 0x69, 0x6e, 0x74, 0x61, 0x62,
	0x6c, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x70, 0x77, 0x6d, 0x61, 0x70, 0x18, 0x0c, 0x20, 0x03,
	0x28, 0x05, 0x52, 0x06, 0x73, 0x70, 0x77, 0x6d, 0x61, 0x70, 0x12, 0x16, 0x0a, 0x06, 0x69, 0x6e,
	0x74, 0x65, 0x72, 0x70, 0x18, 0x0d, 0x20, 0x03, 0x28, 0x09, 0x52, 0x06, 0x69, 0x6e, 0x74, 0x65,
	0x72, 0x70, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x70, 0x70, 0x65, 0x6e, 0x64, 0x18, 0x0e, 0x20, 0x01,
	0x28, 0x08, 0x52, 0x06, 0x61, 0x70, 0x70, 0x65, 0x6e, 0x64, 0x22, 0x11, 0x0a, 0x0f, 0x47, 0x61,
	0x69, 0x6e, 0x63, 0x61, 0x6c, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0xdf, 0x01,
	0x0a, 0x0f, 0x41, 0x70, 0x70, 0x6c, 0x79, 0x63, 0x61, 0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x12, 0x10, 0x0a, 0x03, 0x76, 0x69, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03,
	0x76, 0x69, 0x73, 0x12, 0x14, 0x0a, 0x05, 0x66, 0x69, 0x65, 0x6c, 0x64, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x05, 0x66, 0x69, 0x65, 0x6c, 0x64, 0x12, 0x10, 0x0a, 0x03, 0x73, 0x70, 0x77,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03, 0x73, 0x70, 0x77, 0x12, 0x1c, 0x0a, 0x09, 0x67,
	0x61, 0x69, 0x6e, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x18, 0x04, 0x20, 0x03, 0x28, 0x09, 0x52, 0x09,
	0x67, 0x61, 0x69, 0x6e, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x69, 0x6e, 0x74,
	0x65, 0x72, 0x70, 0x18, 0x05, 0x20, 0x03, 0x28, 0x09, 0x52, 0x06, 0x69, 0x6e, 0x74, 0x65, 0x72,
	0x70, 0x12, 0x28, 0x0a, 0x06, 0x73, 0x70, 0x77, 0x6d, 0x61, 0x70, 0x18, 0x06, 0x20, 0x03, 0x28,
	0x0b, 0x32, 0x10, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x53, 0x70, 0x77, 0x4d, 0x61, 0x70, 0x4c,
	0x69, 0x73, 0x74, 0x52, 0x06, 0x73, 0x70, 0x77, 0x6d, 0x61, 0x70, 0x12, 0x1c, 0x0a, 0x09, 0x61,
	0x70, 0x70, 0x6c, 0x79, 0x6d, 0x6f, 0x64, 0x65, 0x18, 0x07, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09,
	0x61, 0x70, 0x70, 0x6c, 0x79, 0x6d, 0x6f, 0x64, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x63, 0x61, 0x6c,
	0x77, 0x74, 0x18, 0x08, 0x20, 0x01, 0x28, 0x08, 0x52, 0x05, 0x63, 0x61, 0x6c, 0x77, 0x74, 0x22,
	0x1e, 0x0a, 0x0a, 0x53, 0x70, 0x77, 0x4d, 0x61, 0x70, 0x4c, 0x69, 0x73, 0x74, 0x12, 0x10, 0x0a,
	0x03, 0x6d, 0x61, 0x70, 0x18, 0x01, 0x20, 0x03, 0x28, 0x05, 0x52, 0x03, 0x6d, 0x61, 0x70, 0x22,
	0x12, 0x0a, 0x10, 0x41, 0x70, 0x70, 0x6c, 0x79, 0x63, 0x61, 0x6c, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x22, 0x39, 0x0a, 0x0f, 0x43, 0x6c, 0x65, 0x61, 0x72, 0x63, 0x61, 0x6c, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x10, 0x0a, 0x03, 0x76, 0x69, 0x73, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x03, 0x76, 0x69, 0x73, 0x12, 0x14, 0x0a, 0x05, 0x66, 0x69, 0x65, 0x6c,
	0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x66, 0x69, 0x65, 0x6c, 0x64, 0x22, 0x12,
	0x0a, 0x10, 0x43, 0x6c, 0x65, 0x61, 0x72, 0x63, 0x61, 0x6c, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x22, 0x5c, 0x0a, 0x12, 0x46, 0x6c, 0x61, 0x67, 0x6d, 0x61, 0x6e, 0x61, 0x67, 0x65,
	0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x10, 0x0a, 0x03, 0x76, 0x69, 0x73, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03, 0x76, 0x69, 0x73, 0x12, 0x12, 0x0a, 0x04, 0x6d, 0x6f,
	0x64, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6d, 0x6f, 0x64, 0x65, 0x12, 0x20,
	0x0a, 0x0b, 0x76, 0x65, 0x72, 0x73, 0x69, 0x6f, 0x6e, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0b, 0x76, 0x65, 0x72, 0x73, 0x69, 0x6f, 0x6e, 0x6e, 0x61, 0x6d, 0x65,
	0x22, 0x15, 0x0a, 0x13, 0x46, 0x6c, 0x61, 0x67, 0x6d, 0x61, 0x6e, 0x61, 0x67, 0x65, 0x72, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x2f, 0x0a, 0x0f, 0x47, 0x65, 0x74, 0x49, 0x6d,
	0x61, 0x67, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1c, 0x0a, 0x09, 0x69, 0x6d,
	0x61, 0x67, 0x65, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x69,
	0x6d, 0x61, 0x67, 0x65, 0x6e, 0x61, 0x6d, 0x65, 0x22, 0x91, 0x02, 0x0a, 0x10, 0x47, 0x65, 0x74,
	0x49, 0x6d, 0x61, 0x67, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x0e, 0x0a,
	0x02, 0x6e, 0x78, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x02, 0x6e, 0x78, 0x12, 0x0e, 0x0a,
	0x02, 0x6e, 0x79, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x02, 0x6e, 0x79, 0x12, 0x14, 0x0a,
	0x05, 0x69, 0x6d, 0x61, 0x67, 0x65, 0x18, 0x03, 0x20, 0x03, 0x28, 0x01, 0x52, 0x05, 0x69, 0x6d,
	0x61, 0x67, 0x65, 0x12, 0x1a, 0x0a, 0x08, 0x72, 0x65, 0x73, 0x69, 0x64, 0x75, 0x61, 0x6c, 0x18,
	0x04, 0x20, 0x03, 0x28, 0x01, 0x52, 0x08, 0x72, 0x65, 0x73, 0x69, 0x64, 0x75, 0x61, 0x6c, 0x12,
	0x12, 0x0a, 0x04, 0x6d, 0x61, 0x73, 0x6b, 0x18, 0x05, 0x20, 0x03, 0x28, 0x01, 0x52, 0x04, 0x6d,
	0x61, 0x73, 0x6b, 0x12, 0x2a, 0x0a, 0x11, 0x62, 0x65, 0x61, 0x6d, 0x5f, 0x6d, 0x61, 0x6a, 0x6f,
	0x72, 0x5f, 0x61, 0x72, 0x63, 0x73, 0x65, 0x63, 0x18, 0x06, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0f,
	0x62, 0x65, 0x61, 0x6d, 0x4d, 0x61, 0x6a, 0x6f, 0x72, 0x41, 0x72, 0x63, 0x73, 0x65, 0x63, 0x12,
	0x2a, 0x0a, 0x11, 0x62, 0x65, 0x61, 0x6d, 0x5f, 0x6d, 0x69, 0x6e, 0x6f, 0x72, 0x5f, 0x61, 0x72,
	0x63, 0x73, 0x65, 0x63, 0x18, 0x07, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0f, 0x62, 0x65, 0x61, 0x6d,
	0x4d, 0x69, 0x6e, 0x6f, 0x72, 0x41, 0x72, 0x63, 0x73, 0x65, 0x63, 0x12, 0x1e, 0x0a, 0x0b, 0x62,
	0x65, 0x61, 0x6d, 0x5f, 0x70, 0x61, 0x5f, 0x64, 0x65, 0x67, 0x18, 0x08, 0x20, 0x01, 0x28, 0x01,
	0x52, 0x09, 0x62, 0x65, 0x61, 0x6d, 0x50, 0x61, 0x44, 0x65, 0x67, 0x12, 0x1f, 0x0a, 0x0b, 0x63,
	0x65, 0x6c, 0x6c, 0x5f, 0x61, 0x72, 0x63, 0x73, 0x65, 0x63, 0x18, 0x09, 0x20, 0x01, 0x28, 0x01,
	0x52, 0x0a, 0x63, 0x65, 0x6c, 0x6c, 0x41, 0x72, 0x63, 0x73, 0x65, 0x63, 0x22, 0x41, 0x0a, 0x13,
	0x43, 0x6f, 0x70, 0x79, 0x50, 0x72, 0x6f, 0x64, 0x75, 0x63, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x12, 0x12, 0x0a, 0x04, 0x64,
	0x65, 0x73, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x64, 0x65, 0x73, 0x74, 0x22,
	0x16, 0x0a, 0x14, 0x43, 0x6f, 0x70, 0x79, 0x50, 0x72, 0x6f, 0x64, 0x75, 0x63, 0x74, 0x73, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x35, 0x0a, 0x17, 0x43, 0x61, 0x6c, 0x74, 0x61,
	0x62, 0x6c, 0x65, 0x46, 0x6c, 0x61, 0x67, 0x52, 0x6f, 0x77, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x1a, 0x0a, 0x08, 0x63, 0x61, 0x6c, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x61, 0x6c, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x22, 0x41,
	0x0a, 0x18, 0x43, 0x61, 0x6c, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x46, 0x6c, 0x61, 0x67, 0x52, 0x6f,
	0x77, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x25, 0x0a, 0x04, 0x72, 0x6f,
	0x77, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x11, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e,
	0x43, 0x61, 0x6c, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x52, 0x6f, 0x77, 0x52, 0x04, 0x72, 0x6f, 0x77,
	0x73, 0x22, 0x58, 0x0a, 0x0b, 0x43, 0x61, 0x6c, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x52, 0x6f, 0x77,
	0x12, 0x15, 0x0a, 0x06, 0x73, 0x70, 0x77, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05,
	0x52, 0x05, 0x73, 0x70, 0x77, 0x49, 0x64, 0x12, 0x18, 0x0a, 0x07, 0x61, 0x6e, 0x74, 0x65, 0x6e,
	0x6e, 0x61, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x61, 0x6e, 0x74, 0x65, 0x6e, 0x6e,
	0x61, 0x12, 0x18, 0x0a, 0x07, 0x66, 0x6c, 0x61, 0x67, 0x67, 0x65, 0x64, 0x18, 0x03, 0x20, 0x01,
	0x28, 0x08, 0x52, 0x07, 0x66, 0x6c, 0x61, 0x67, 0x67, 0x65, 0x64, 0x22, 0xd1, 0x01, 0x0a, 0x1a,
	0x41, 0x70, 0x70, 0x61, 0x72, 0x65, 0x6e, 0x74, 0x53, 0x65, 0x6e, 0x73, 0x69, 0x74, 0x69, 0x76,
	0x69, 0x74, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x10, 0x0a, 0x03, 0x76, 0x69,
	0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x09, 0x52, 0x03, 0x76, 0x69, 0x73, 0x12, 0x3b, 0x0a, 0x03,
	0x73, 0x70, 0x77, 0x18, 0x02, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x29, 0x2e, 0x63, 0x61, 0x73, 0x61,
	0x2e, 0x41, 0x70, 0x70, 0x61, 0x72, 0x65, 0x6e, 0x74, 0x53, 0x65, 0x6e, 0x73, 0x69, 0x74, 0x69,
	0x76, 0x69, 0x74, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x2e, 0x53, 0x70, 0x77, 0x45,
	0x6e, 0x74, 0x72, 0x79, 0x52, 0x03, 0x73, 0x70, 0x77, 0x12, 0x14, 0x0a, 0x05, 0x66, 0x69, 0x65,
	0x6c, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x66, 0x69, 0x65, 0x6c, 0x64, 0x12,
	0x16, 0x0a, 0x06, 0x72, 0x6f, 0x62, 0x75, 0x73, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01, 0x52,
	0x06, 0x72, 0x6f, 0x62, 0x75, 0x73, 0x74, 0x1a, 0x36, 0x0a, 0x08, 0x53, 0x70, 0x77, 0x45, 0x6e,
	0x74, 0x72, 0x79, 0x12, 0x10, 0x0a, 0x03, 0x6b, 0x65, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x03, 0x6b, 0x65, 0x79, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x3a, 0x02, 0x38, 0x01, 0x22,
	0x80, 0x01, 0x0a, 0x1b, 0x41, 0x70, 0x70, 0x61, 0x72, 0x65, 0x6e, 0x74, 0x53, 0x65, 0x6e, 0x73,
	0x69, 0x74, 0x69, 0x76, 0x69, 0x74, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x1e, 0x0a, 0x0b, 0x6a, 0x79, 0x5f, 0x70, 0x65, 0x72, 0x5f, 0x62, 0x65, 0x61, 0x6d, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x01, 0x52, 0x09, 0x6a, 0x79, 0x50, 0x65, 0x72, 0x42, 0x65, 0x61, 0x6d, 0x12,
	0x21, 0x0a, 0x0c, 0x62, 0x61, 0x6e, 0x64, 0x77, 0x69, 0x64, 0x74, 0x68, 0x5f, 0x68, 0x7a, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0b, 0x62, 0x61, 0x6e, 0x64, 0x77, 0x69, 0x64, 0x74, 0x68,
	0x48, 0x7a, 0x12, 0x1e, 0x0a, 0x0b, 0x72, 0x65, 0x66, 0x5f, 0x66, 0x72, 0x65, 0x71, 0x5f, 0x68,
	0x7a, 0x18, 0x03, 0x20, 0x01, 0x28, 0x01, 0x52, 0x09, 0x72, 0x65, 0x66, 0x46, 0x72, 0x65, 0x71,
	0x48, 0x7a, 0x22, 0x21, 0x0a, 0x0d, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x73, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x10, 0x0a, 0x03, 0x76, 0x69, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x03, 0x76, 0x69, 0x73, 0x22, 0x26, 0x0a, 0x0e, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x73, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x6e, 0x61, 0x6d, 0x65, 0x73,
	0x18, 0x01, 0x20, 0x03, 0x28, 0x09, 0x52, 0x05, 0x6e, 0x61, 0x6d, 0x65, 0x73, 0x22, 0x3e, 0x0a,
	0x14, 0x53, 0x63, 0x61, 0x6e, 0x73, 0x46, 0x6f, 0x72, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x10, 0x0a, 0x03, 0x76, 0x69, 0x73, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x03, 0x76, 0x69, 0x73, 0x12, 0x14, 0x0a, 0x05, 0x66, 0x69, 0x65, 0x6c, 0x64,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x66, 0x69, 0x65, 0x6c, 0x64, 0x22, 0x2d, 0x0a,
	0x15, 0x53, 0x63, 0x61, 0x6e, 0x73, 0x46, 0x6f, 0x72, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x73, 0x63, 0x61, 0x6e, 0x73, 0x18,
	0x01, 0x20, 0x03, 0x28, 0x05, 0x52, 0x05, 0x73, 0x63, 0x61, 0x6e, 0x73, 0x22, 0x3a, 0x0a, 0x12,
	0x53, 0x70, 0x77, 0x73, 0x46, 0x6f, 0x72, 0x53, 0x63, 0x61, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x10, 0x0a, 0x03, 0x76, 0x69, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x03, 0x76, 0x69, 0x73, 0x12, 0x12, 0x0a, 0x04, 0x73, 0x63, 0x61, 0x6e, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x05, 0x52, 0x04, 0x73, 0x63, 0x61, 0x6e, 0x22, 0x29, 0x0a, 0x13, 0x53, 0x70, 0x77, 0x73,
	0x46, 0x6f, 0x72, 0x53, 0x63, 0x61, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x12, 0x0a, 0x04, 0x73, 0x70, 0x77, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x05, 0x52, 0x04, 0x73,
	0x70, 0x77, 0x73, 0x22, 0x3b, 0x0a, 0x13, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x46, 0x6f, 0x72, 0x53,
	0x63, 0x61, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x10, 0x0a, 0x03, 0x76, 0x69,
	0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03, 0x76, 0x69, 0x73, 0x12, 0x12, 0x0a, 0x04,
	0x73, 0x63, 0x61, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x04, 0x73, 0x63, 0x61, 0x6e,
	0x22, 0x37, 0x0a, 0x14, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x46, 0x6f, 0x72, 0x53, 0x63, 0x61, 0x6e,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1f, 0x0a, 0x0b, 0x6d, 0x6a, 0x64, 0x5f,
	0x73, 0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x01, 0x52, 0x0a, 0x6d,
	0x6a, 0x64, 0x53, 0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73, 0x22, 0x4d, 0x0a, 0x13, 0x45, 0x78, 0x70,
	0x6f, 0x73, 0x75, 0x72, 0x65, 0x54, 0x69, 0x6d, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x10, 0x0a, 0x03, 0x76, 0x69, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03, 0x76,
	0x69, 0x73, 0x12, 0x12, 0x0a, 0x04, 0x73, 0x63, 0x61, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05,
	0x52, 0x04, 0x73, 0x63, 0x61, 0x6e, 0x12, 0x10, 0x0a, 0x03, 0x73, 0x70, 0x77, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x03, 0x73, 0x70, 0x77, 0x22, 0x30, 0x0a, 0x14, 0x45, 0x78, 0x70, 0x6f,
	0x73, 0x75, 0x72, 0x65, 0x54, 0x69, 0x6d, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x18, 0x0a, 0x07, 0x73, 0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x01, 0x52, 0x07, 0x73, 0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73, 0x22, 0x27, 0x0a, 0x13, 0x41, 0x6e,
	0x74, 0x65, 0x6e, 0x6e, 0x61, 0x4e, 0x61, 0x6d, 0x65, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x12, 0x10, 0x0a, 0x03, 0x76, 0x69, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03,
	0x76, 0x69, 0x73, 0x22, 0x2c, 0x0a, 0x14, 0x41, 0x6e, 0x74, 0x65, 0x6e, 0x6e, 0x61, 0x4e, 0x61,
	0x6d, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x6e,
	0x61, 0x6d, 0x65, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x09, 0x52, 0x05, 0x6e, 0x61, 0x6d, 0x65,
	0x73, 0x22, 0x29, 0x0a, 0x15, 0x41, 0x6e, 0x74, 0x65, 0x6e, 0x6e, 0x61, 0x4f, 0x66, 0x66, 0x73,
	0x65, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x10, 0x0a, 0x03, 0x76, 0x69,
	0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03, 0x76, 0x69, 0x73, 0x22, 0xa7, 0x01, 0x0a,
	0x16, 0x41, 0x6e, 0x74, 0x65, 0x6e, 0x6e, 0x61, 0x4f, 0x66, 0x66, 0x73, 0x65, 0x74, 0x73, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x43, 0x0a, 0x07, 0x6f, 0x66, 0x66, 0x73, 0x65,
	0x74, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x29, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e,
	0x41, 0x6e, 0x74, 0x65, 0x6e, 0x6e, 0x61, 0x4f, 0x66, 0x66, 0x73, 0x65, 0x74, 0x73, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x2e, 0x4f, 0x66, 0x66, 0x73, 0x65, 0x74, 0x73, 0x45, 0x6e,
	0x74, 0x72, 0x79, 0x52, 0x07, 0x6f, 0x66, 0x66, 0x73, 0x65, 0x74, 0x73, 0x1a, 0x48, 0x0a, 0x0c,
	0x4f, 0x66, 0x66, 0x73, 0x65, 0x74, 0x73, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x12, 0x10, 0x0a, 0x03,
	0x6b, 0x65, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03, 0x6b, 0x65, 0x79, 0x12, 0x22,
	0x0a, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x0c, 0x2e,
	0x63, 0x61, 0x73, 0x61, 0x2e, 0x4f, 0x66, 0x66, 0x73, 0x65, 0x74, 0x52, 0x05, 0x76, 0x61, 0x6c,
	0x75, 0x65, 0x3a, 0x02, 0x38, 0x01, 0x22, 0x42, 0x0a, 0x06, 0x4f, 0x66, 0x66, 0x73, 0x65, 0x74,
	0x12, 0x1c, 0x0a, 0x09, 0x6c, 0x6f, 0x6e, 0x67, 0x69, 0x74, 0x75, 0x64, 0x65, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x01, 0x52, 0x09, 0x6c, 0x6f, 0x6e, 0x67, 0x69, 0x74, 0x75, 0x64, 0x65, 0x12, 0x1a,
	0x0a, 0x08, 0x6c, 0x61, 0x74, 0x69, 0x74, 0x75, 0x64, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01,
	0x52, 0x08, 0x6c, 0x61, 0x74, 0x69, 0x74, 0x75, 0x64, 0x65, 0x22, 0x41, 0x0a, 0x17, 0x46, 0x69,
	0x65, 0x6c, 0x64, 0x49, 0x64, 0x73, 0x46, 0x6f, 0x72, 0x53, 0x63, 0x61, 0x6e, 0x73, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x10, 0x0a, 0x03, 0x76, 0x69, 0x73, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x03, 0x76, 0x69, 0x73, 0x12, 0x14, 0x0a, 0x05, 0x73, 0x63, 0x61, 0x6e, 0x73,
	0x18, 0x02, 0x20, 0x03, 0x28, 0x05, 0x52, 0x05, 0x73, 0x63, 0x61, 0x6e, 0x73, 0x22, 0x37, 0x0a,
	0x18, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x49, 0x64, 0x73, 0x46, 0x6f, 0x72, 0x53, 0x63, 0x61, 0x6e,
	0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x66, 0x69, 0x65,
	0x6c, 0x64, 0x5f, 0x69, 0x64, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x05, 0x52, 0x08, 0x66, 0x69,
	0x65, 0x6c, 0x64, 0x49, 0x64, 0x73, 0x22, 0x28, 0x0a, 0x14, 0x53, 0x70, 0x77, 0x50, 0x72, 0x6f,
	0x70, 0x65, 0x72, 0x74, 0x69, 0x65, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x10,
	0x0a, 0x03, 0x76, 0x69, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03, 0x76, 0x69, 0x73,
	0x22, 0x3e, 0x0a, 0x15, 0x53, 0x70, 0x77, 0x50, 0x72, 0x6f, 0x70, 0x65, 0x72, 0x74, 0x69, 0x65,
	0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x25, 0x0a, 0x04, 0x73, 0x70, 0x77,
	0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x11, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x53,
	0x70, 0x77, 0x50, 0x72, 0x6f, 0x70, 0x65, 0x72, 0x74, 0x79, 0x52, 0x04, 0x73, 0x70, 0x77, 0x73,
	0x22, 0xa5, 0x01, 0x0a, 0x0b, 0x53, 0x70, 0x77, 0x50, 0x72, 0x6f, 0x70, 0x65, 0x72, 0x74, 0x79,
	0x12, 0x15, 0x0a, 0x06, 0x73, 0x70, 0x77, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05,
	0x52, 0x05, 0x73, 0x70, 0x77, 0x49, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x62, 0x61, 0x6e, 0x64, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x62, 0x61, 0x6e, 0x64, 0x12, 0x21, 0x0a, 0x0c, 0x62,
	0x61, 0x6e, 0x64, 0x77, 0x69, 0x64, 0x74, 0x68, 0x5f, 0x68, 0x7a, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x01, 0x52, 0x0b, 0x62, 0x61, 0x6e, 0x64, 0x77, 0x69, 0x64, 0x74, 0x68, 0x48, 0x7a, 0x12, 0x26,
	0x0a, 0x0f, 0x65, 0x66, 0x66, 0x65, 0x63, 0x74, 0x69, 0x76, 0x65, 0x5f, 0x62, 0x77, 0x5f, 0x68,
	0x7a, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0d, 0x65, 0x66, 0x66, 0x65, 0x63, 0x74, 0x69,
	0x76, 0x65, 0x42, 0x77, 0x48, 0x7a, 0x12, 0x20, 0x0a, 0x0c, 0x6d, 0x65, 0x61, 0x6e, 0x5f, 0x66,
	0x72, 0x65, 0x71, 0x5f, 0x68, 0x7a, 0x18, 0x05, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0a, 0x6d, 0x65,
	0x61, 0x6e, 0x46, 0x72, 0x65, 0x71, 0x48, 0x7a, 0x32, 0xe8, 0x09, 0x0a, 0x0c, 0x43, 0x61, 0x73,
	0x61, 0x45, 0x78, 0x65, 0x63, 0x75, 0x74, 0x6f, 0x72, 0x12, 0x33, 0x0a, 0x06, 0x54, 0x63, 0x6c,
	0x65, 0x61, 0x6e, 0x12, 0x13, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x54, 0x63, 0x6c, 0x65, 0x61,
	0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x14, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e,
	0x54, 0x63, 0x6c, 0x65, 0x61, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x36,
	0x0a, 0x07, 0x47, 0x61, 0x69, 0x6e, 0x63, 0x61, 0x6c, 0x12, 0x14, 0x2e, 0x63, 0x61, 0x73, 0x61,
	0x2e, 0x47, 0x61, 0x69, 0x6e, 0x63, 0x61, 0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x15, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x47, 0x61, 0x69, 0x6e, 0x63, 0x61, 0x6c, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x39, 0x0a, 0x08, 0x41, 0x70, 0x70, 0x6c, 0x79, 0x63,
	0x61, 0x6c, 0x12, 0x15, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x41, 0x70, 0x70, 0x6c, 0x79, 0x63,
	0x61, 0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x16, 0x2e, 0x63, 0x61, 0x73, 0x61,
	0x2e, 0x41, 0x70, 0x70, 0x6c, 0x79, 0x63, 0x61, 0x6c, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x39, 0x0a, 0x08, 0x43, 0x6c, 0x65, 0x61, 0x72, 0x63, 0x61, 0x6c, 0x12, 0x15, 0x2e,
	0x63, 0x61, 0x73, 0x61, 0x2e, 0x43, 0x6c, 0x65, 0x61, 0x72, 0x63, 0x61, 0x6c, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x16, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x43, 0x6c, 0x65, 0x61,
	0x72, 0x63, 0x61, 0x6c, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x42, 0x0a, 0x0b,
	0x46, 0x6c, 0x61, 0x67, 0x6d, 0x61, 0x6e, 0x61, 0x67, 0x65, 0x72, 0x12, 0x18, 0x2e, 0x63, 0x61,
	0x73, 0x61, 0x2e, 0x46, 0x6c, 0x61, 0x67, 0x6d, 0x61, 0x6e, 0x61, 0x67, 0x65, 0x72, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x19, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x46, 0x6c, 0x61,
	0x67, 0x6d, 0x61, 0x6e, 0x61, 0x67, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x39, 0x0a, 0x08, 0x47, 0x65, 0x74, 0x49, 0x6d, 0x61, 0x67, 0x65, 0x12, 0x15, 0x2e, 0x63,
	0x61, 0x73, 0x61, 0x2e, 0x47, 0x65, 0x74, 0x49, 0x6d, 0x61, 0x67, 0x65, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x16, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x47, 0x65, 0x74, 0x49, 0x6d,
	0x61, 0x67, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x45, 0x0a, 0x0c, 0x43,
	0x6f, 0x70, 0x79, 0x50, 0x72, 0x6f, 0x64, 0x75, 0x63, 0x74, 0x73, 0x12, 0x19, 0x2e, 0x63, 0x61,
	0x73, 0x61, 0x2e, 0x43, 0x6f, 0x70, 0x79, 0x50, 0x72, 0x6f, 0x64, 0x75, 0x63, 0x74, 0x73, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1a, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x43, 0x6f,
	0x70, 0x79, 0x50, 0x72, 0x6f, 0x64, 0x75, 0x63, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x51, 0x0a, 0x10, 0x43, 0x61, 0x6c, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x46, 0x6c,
	0x61, 0x67, 0x52, 0x6f, 0x77, 0x73, 0x12, 0x1d, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x43, 0x61,
	0x6c, 0x74, 0x61, 0x62, 0x6c, 0x65, 0x46, 0x6c, 0x61, 0x67, 0x52, 0x6f, 0x77, 0x73, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1e, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x43, 0x61, 0x6c,
	0x74, 0x61, 0x62, 0x6c, 0x65, 0x46, 0x6c, 0x61, 0x67, 0x52, 0x6f, 0x77, 0x73, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5a, 0x0a, 0x13, 0x41, 0x70, 0x70, 0x61, 0x72, 0x65, 0x6e,
	0x74, 0x53, 0x65, 0x6e, 0x73, 0x69, 0x74, 0x69, 0x76, 0x69, 0x74, 0x79, 0x12, 0x20, 0x2e, 0x63,
	0x61, 0x73, 0x61, 0x2e, 0x41, 0x70, 0x70, 0x61, 0x72, 0x65, 0x6e, 0x74, 0x53, 0x65, 0x6e, 0x73,
	0x69, 0x74, 0x69, 0x76, 0x69, 0x74, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x21,
	0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x41, 0x70, 0x70, 0x61, 0x72, 0x65, 0x6e, 0x74, 0x53, 0x65,
	0x6e, 0x73, 0x69, 0x74, 0x69, 0x76, 0x69, 0x74, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x33, 0x0a, 0x06, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x73, 0x12, 0x13, 0x2e, 0x63, 0x61,
	0x73, 0x61, 0x2e, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x14, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x73, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x48, 0x0a, 0x0d, 0x53, 0x63, 0x61, 0x6e, 0x73, 0x46,
	0x6f, 0x72, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x12, 0x1a, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x53,
	0x63, 0x61, 0x6e, 0x73, 0x46, 0x6f, 0x72, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x1b, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x53, 0x63, 0x61, 0x6e, 0x73,
	0x46, 0x6f, 0x72, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x42, 0x0a, 0x0b, 0x53, 0x70, 0x77, 0x73, 0x46, 0x6f, 0x72, 0x53, 0x63, 0x61, 0x6e, 0x12,
	0x18, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x53, 0x70, 0x77, 0x73, 0x46, 0x6f, 0x72, 0x53, 0x63,
	0x61, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x19, 0x2e, 0x63, 0x61, 0x73, 0x61,
	0x2e, 0x53, 0x70, 0x77, 0x73, 0x46, 0x6f, 0x72, 0x53, 0x63, 0x61, 0x6e, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x45, 0x0a, 0x0c, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x46, 0x6f, 0x72,
	0x53, 0x63, 0x61, 0x6e, 0x12, 0x19, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x54, 0x69, 0x6d, 0x65,
	0x73, 0x46, 0x6f, 0x72, 0x53, 0x63, 0x61, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x1a, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x46, 0x6f, 0x72, 0x53,
	0x63, 0x61, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x45, 0x0a, 0x0c, 0x45,
	0x78, 0x70, 0x6f, 0x73, 0x75, 0x72, 0x65, 0x54, 0x69, 0x6d, 0x65, 0x12, 0x19, 0x2e, 0x63, 0x61,
	0x73, 0x61, 0x2e, 0x45, 0x78, 0x70, 0x6f, 0x73, 0x75, 0x72, 0x65, 0x54, 0x69, 0x6d, 0x65, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1a, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x45, 0x78,
	0x70, 0x6f, 0x73, 0x75, 0x72, 0x65, 0x54, 0x69, 0x6d, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x45, 0x0a, 0x0c, 0x41, 0x6e, 0x74, 0x65, 0x6e, 0x6e, 0x61, 0x4e, 0x61, 0x6d,
	0x65, 0x73, 0x12, 0x19, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x41, 0x6e, 0x74, 0x65, 0x6e, 0x6e,
	0x61, 0x4e, 0x61, 0x6d, 0x65, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1a, 0x2e,
	0x63, 0x61, 0x73, 0x61, 0x2e, 0x41, 0x6e, 0x74, 0x65, 0x6e, 0x6e, 0x61, 0x4e, 0x61, 0x6d, 0x65,
	0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4b, 0x0a, 0x0e, 0x41, 0x6e, 0x74,
	0x65, 0x6e, 0x6e, 0x61, 0x4f, 0x66, 0x66, 0x73, 0x65, 0x74, 0x73, 0x12, 0x1b, 0x2e, 0x63, 0x61,
	0x73, 0x61, 0x2e, 0x41, 0x6e, 0x74, 0x65, 0x6e, 0x6e, 0x61, 0x4f, 0x66, 0x66, 0x73, 0x65, 0x74,
	0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1c, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e,
	0x41, 0x6e, 0x74, 0x65, 0x6e, 0x6e, 0x61, 0x4f, 0x66, 0x66, 0x73, 0x65, 0x74, 0x73, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x51, 0x0a, 0x10, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x49,
	0x64, 0x73, 0x46, 0x6f, 0x72, 0x53, 0x63, 0x61, 0x6e, 0x73, 0x12, 0x1d, 0x2e, 0x63, 0x61, 0x73,
	0x61, 0x2e, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x49, 0x64, 0x73, 0x46, 0x6f, 0x72, 0x53, 0x63, 0x61,
	0x6e, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1e, 0x2e, 0x63, 0x61, 0x73, 0x61,
	0x2e, 0x46, 0x69, 0x65, 0x6c, 0x64, 0x49, 0x64, 0x73, 0x46, 0x6f, 0x72, 0x53, 0x63, 0x61, 0x6e,
	0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x48, 0x0a, 0x0d, 0x53, 0x70, 0x77,
	0x50, 0x72, 0x6f, 0x70, 0x65, 0x72, 0x74, 0x69, 0x65, 0x73, 0x12, 0x1a, 0x2e, 0x63, 0x61, 0x73,
	0x61, 0x2e, 0x53, 0x70, 0x77, 0x50, 0x72, 0x6f, 0x70, 0x65, 0x72, 0x74, 0x69, 0x65, 0x73, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1b, 0x2e, 0x63, 0x61, 0x73, 0x61, 0x2e, 0x53, 0x70,
	0x77, 0x50, 0x72, 0x6f, 0x70, 0x65, 0x72, 0x74, 0x69, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x42, 0x2a, 0x5a, 0x28, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f,
	0x6d, 0x2f, 0x72, 0x2d, 0x78, 0x75, 0x65, 0x2f, 0x61, 0x75, 0x74, 0x6f, 0x2d, 0x73, 0x65, 0x6c,
	0x66, 0x63, 0x61, 0x6c, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x63, 0x61, 0x73, 0x61, 0x70, 0x62, 0x62,
	0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_casa_proto_rawDescOnce sync.Once
	file_casa_proto_rawDescData = file_casa_proto_rawDesc
)

func file_casa_proto_rawDescGZIP() []byte {
	file_casa_proto_rawDescOnce.Do(func() {
		file_casa_proto_rawDescData = protoimpl.X.CompressGZIP(file_casa_proto_rawDescData)
	})
	return file_casa_proto_rawDescData
}

var file_casa_proto_msgTypes = make([]protoimpl.MessageInfo, 42)
var file_casa_proto_goTypes = []any{
	(*TcleanRequest)(nil),               // 0: casa.TcleanRequest
	(*TcleanResponse)(nil),              // 1: casa.TcleanResponse
	(*GaincalRequest)(nil),              // 2: casa.GaincalRequest
	(*GaincalResponse)(nil),             // 3: casa.GaincalResponse
	(*ApplycalRequest)(nil),             // 4: casa.ApplycalRequest
	(*SpwMapList)(nil),                  // 5: casa.SpwMapList
	(*ApplycalResponse)(nil),            // 6: casa.ApplycalResponse
	(*ClearcalRequest)(nil),             // 7: casa.ClearcalRequest
	(*ClearcalResponse)(nil),            // 8: casa.ClearcalResponse
	(*FlagmanagerRequest)(nil),          // 9: casa.FlagmanagerRequest
	(*FlagmanagerResponse)(nil),         // 10: casa.FlagmanagerResponse
	(*GetImageRequest)(nil),             // 11: casa.GetImageRequest
	(*GetImageResponse)(nil),            // 12: casa.GetImageResponse
	(*CopyProductsRequest)(nil),         // 13: casa.CopyProductsRequest
	(*CopyProductsResponse)(nil),        // 14: casa.CopyProductsResponse
	(*CaltableFlagRowsRequest)(nil),     // 15: casa.CaltableFlagRowsRequest
	(*CaltableFlagRowsResponse)(nil),    // 16: casa.CaltableFlagRowsResponse
	(*CaltableRow)(nil),                 // 17: casa.CaltableRow
	(*ApparentSensitivityRequest)(nil),  // 18: casa.ApparentSensitivityRequest
	(*ApparentSensitivityResponse)(nil), // 19: casa.ApparentSensitivityResponse
	(*FieldsRequest)(nil),               // 20: casa.FieldsRequest
	(*FieldsResponse)(nil),              // 21: casa.FieldsResponse
	(*ScansForFieldRequest)(nil),        // 22: casa.ScansForFieldRequest
	(*ScansForFieldResponse)(nil),       // 23: casa.ScansForFieldResponse
	(*SpwsForScanRequest)(nil),          // 24: casa.SpwsForScanRequest
	(*SpwsForScanResponse)(nil),         // 25: casa.SpwsForScanResponse
	(*TimesForScanRequest)(nil),         // 26: casa.TimesForScanRequest
	(*TimesForScanResponse)(nil),        // 27: casa.TimesForScanResponse
	(*ExposureTimeRequest)(nil),         // 28: casa.ExposureTimeRequest
	(*ExposureTimeResponse)(nil),        // 29: casa.ExposureTimeResponse
	(*AntennaNamesRequest)(nil),         // 30: casa.AntennaNamesRequest
	(*AntennaNamesResponse)(nil),        // 31: casa.AntennaNamesResponse
	(*AntennaOffsetsRequest)(nil),       // 32: casa.AntennaOffsetsRequest
	(*AntennaOffsetsResponse)(nil),      // 33: casa.AntennaOffsetsResponse
	(*Offset)(nil),                      // 34: casa.Offset
	(*FieldIdsForScansRequest)(nil),     // 35: casa.FieldIdsForScansRequest
	(*FieldIdsForScansResponse)(nil),    // 36: casa.FieldIdsForScansResponse
	(*SpwPropertiesRequest)(nil),        // 37: casa.SpwPropertiesRequest
	(*SpwPropertiesResponse)(nil),       // 38: casa.SpwPropertiesResponse
	(*SpwProperty)(nil),                 // 39: casa.SpwProperty
	nil,                                 // 40: casa.ApparentSensitivityRequest.SpwEntry
	nil,                                 // 41: casa.AntennaOffsetsResponse.OffsetsEntry
}
var file_casa_proto_depIdxs = []int32{
	5,  // 0: casa.ApplycalRequest.spwmap:type_name -> casa.SpwMapList
	17, // 1: casa.CaltableFlagRowsResponse.rows:type_name -> casa.CaltableRow
	40, // 2: casa.ApparentSensitivityRequest.spw:type_name -> casa.ApparentSensitivityRequest.SpwEntry
	41, // 3: casa.AntennaOffsetsResponse.offsets:type_name -> casa.AntennaOffsetsResponse.OffsetsEntry
	39, // 4: casa.SpwPropertiesResponse.spws:type_name -> casa.SpwProperty
	34, // 5: casa.AntennaOffsetsResponse.OffsetsEntry.value:type_name -> casa.Offset
	0,  // 6: casa.CasaExecutor.Tclean:input_type -> casa.TcleanRequest
	2,  // 7: casa.CasaExecutor.Gaincal:input_type -> casa.GaincalRequest
	4,  // 8: casa.CasaExecutor.Applycal:input_type -> casa.ApplycalRequest
	7,  // 9: casa.CasaExecutor.Clearcal:input_type -> casa.ClearcalRequest
	9,  // 10: casa.CasaExecutor.Flagmanager:input_type -> casa.FlagmanagerRequest
	11, // 11: casa.CasaExecutor.GetImage:input_type -> casa.GetImageRequest
	13, // 12: casa.CasaExecutor.CopyProducts:input_type -> casa.CopyProductsRequest
	15, // 13: casa.CasaExecutor.CaltableFlagRows:input_type -> casa.CaltableFlagRowsRequest
	18, // 14: casa.CasaExecutor.ApparentSensitivity:input_type -> casa.ApparentSensitivityRequest
	20, // 15: casa.CasaExecutor.Fields:input_type -> casa.FieldsRequest
	22, // 16: casa.CasaExecutor.ScansForField:input_type -> casa.ScansForFieldRequest
	24, // 17: casa.CasaExecutor.SpwsForScan:input_type -> casa.SpwsForScanRequest
	26, // 18: casa.CasaExecutor.TimesForScan:input_type -> casa.TimesForScanRequest
	28, // 19: casa.CasaExecutor.ExposureTime:input_type -> casa.ExposureTimeRequest
	30, // 20: casa.CasaExecutor.AntennaNames:input_type -> casa.AntennaNamesRequest
	32, // 21: casa.CasaExecutor.AntennaOffsets:input_type -> casa.AntennaOffsetsRequest
	35, // 22: casa.CasaExecutor.FieldIdsForScans:input_type -> casa.FieldIdsForScansRequest
	37, // 23: casa.CasaExecutor.SpwProperties:input_type -> casa.SpwPropertiesRequest
	1,  // 24: casa.CasaExecutor.Tclean:output_type -> casa.TcleanResponse
	3,  // 25: casa.CasaExecutor.Gaincal:output_type -> casa.GaincalResponse
	6,  // 26: casa.CasaExecutor.Applycal:output_type -> casa.ApplycalResponse
	8,  // 27: casa.CasaExecutor.Clearcal:output_type -> casa.ClearcalResponse
	10, // 28: casa.CasaExecutor.Flagmanager:output_type -> casa.FlagmanagerResponse
	12, // 29: casa.CasaExecutor.GetImage:output_type -> casa.GetImageResponse
	14, // 30: casa.CasaExecutor.CopyProducts:output_type -> casa.CopyProductsResponse
	16, // 31: casa.CasaExecutor.CaltableFlagRows:output_type -> casa.CaltableFlagRowsResponse
	19, // 32: casa.CasaExecutor.ApparentSensitivity:output_type -> casa.ApparentSensitivityResponse
	21, // 33: casa.CasaExecutor.Fields:output_type -> casa.FieldsResponse
	23, // 34: casa.CasaExecutor.ScansForField:output_type -> casa.ScansForFieldResponse
	25, // 35: casa.CasaExecutor.SpwsForScan:output_type -> casa.SpwsForScanResponse
	27, // 36: casa.CasaExecutor.TimesForScan:output_type -> casa.TimesForScanResponse
	29, // 37: casa.CasaExecutor.ExposureTime:output_type -> casa.ExposureTimeResponse
	31, // 38: casa.CasaExecutor.AntennaNames:output_type -> casa.AntennaNamesResponse
	33, // 39: casa.CasaExecutor.AntennaOffsets:output_type -> casa.AntennaOffsetsResponse
	36, // 40: casa.CasaExecutor.FieldIdsForScans:output_type -> casa.FieldIdsForScansResponse
	38, // 41: casa.CasaExecutor.SpwProperties:output_type -> casa.SpwPropertiesResponse
	24, // [24:42] is the sub-list for method output_type
	6,  // [6:24] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_casa_proto_init() }
func file_casa_proto_init() {
	if File_casa_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_casa_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   42,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_casa_proto_goTypes,
		DependencyIndexes: file_casa_proto_depIdxs,
		MessageInfos:      file_casa_proto_msgTypes,
	}.Build()
	File_casa_proto = out.File
	file_casa_proto_rawDesc = nil
	file_casa_proto_goTypes = nil
	file_casa_proto_depIdxs = nil
}
