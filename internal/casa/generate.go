// Package casa wraps the gRPC connection to the CASA executor sidecar, which
// runs casatools/casatasks and exposes imaging, calibration, and
// measurement-set metadata as blocking RPCs.
package casa

//go:generate protoc --proto_path=../../proto --go_out=../../gen/casapb --go_opt=paths=source_relative --go-grpc_out=../../gen/casapb --go-grpc_opt=paths=source_relative casa.proto
