package casa

// #region imports
import (
	"context"
	"fmt"

	pb "github.com/r-xue/auto-selfcal/gen/casapb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/r-xue/auto-selfcal/internal/flagging"
	"github.com/r-xue/auto-selfcal/internal/metrics"
)

// #endregion imports

// #region types

// TcleanParams carries the subset of tclean parameters the optimizer drives.
type TcleanParams struct {
	Vis         []string
	ImageName   string
	Field       string
	Spw         string
	UVRange     string
	ThresholdJy float64
	NSigma      float64
	NIter       int64
	Gain        float64
	NTerms      int
	Gridder     string
	Robust      float64
	SaveModel   string // "" or "modelcolumn"
	Parallel    bool
	UseMask     string
	StartModel  string
}

// TcleanResult holds the returned clean summary.
type TcleanResult struct {
	IterDone int64
	StopCode int
}

// GaincalParams carries a single gain solve.
type GaincalParams struct {
	Vis       string
	Caltable  string
	Field     string
	Spw       string
	Refant    string
	Gaintype  string // "G" or "T"
	Calmode   string // "p" or "ap"
	Solint    string
	MinSNR    float64
	Combine   string
	Gaintable []string
	SpwMap    []int
	Interp    []string
	Append    bool
}

// ApplycalParams carries a calibration apply.
type ApplycalParams struct {
	Vis       string
	Field     string
	Spw       string
	Gaintable []string
	Interp    []string
	SpwMaps   [][]int
	ApplyMode string // "calflag" or "calonly"
	CalWt     bool
}

// SpwProperty describes one spectral window of a visibility file.
type SpwProperty struct {
	SpwID         int
	Band          string
	BandwidthHz   float64
	EffectiveBWHz float64
	MeanFreqHz    float64
}

// Offset is an antenna position offset from the array reference.
type Offset struct {
	Longitude float64
	Latitude  float64
}

// #endregion types

// #region client-struct

// Client wraps the gRPC connection to the CASA executor sidecar.
type Client struct {
	conn   *grpc.ClientConn
	client pb.CasaExecutorClient
}

// #endregion client-struct

// #region constructor

// NewClient connects to the executor sidecar.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, client: pb.NewCasaExecutorClient(conn)}, nil
}

// NewClientWithService creates a Client over an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.CasaExecutorClient) *Client {
	return &Client{client: svc}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion constructor

// #region imaging

// Tclean runs a clean and returns its iteration summary.
func (c *Client) Tclean(ctx context.Context, p TcleanParams) (TcleanResult, error) {
	resp, err := c.client.Tclean(ctx, &pb.TcleanRequest{
		Vis:         p.Vis,
		Imagename:   p.ImageName,
		Field:       p.Field,
		Spw:         p.Spw,
		Uvrange:     p.UVRange,
		ThresholdJy: p.ThresholdJy,
		Nsigma:      p.NSigma,
		Niter:       p.NIter,
		Gain:        p.Gain,
		Nterms:      int32(p.NTerms),
		Gridder:     p.Gridder,
		Robust:      p.Robust,
		Savemodel:   p.SaveModel,
		Parallel:    p.Parallel,
		Usemask:     p.UseMask,
		Startmodel:  p.StartModel,
	})
	if err != nil {
		return TcleanResult{}, fmt.Errorf("tclean rpc: %w", err)
	}
	return TcleanResult{IterDone: resp.Iterdone, StopCode: int(resp.Stopcode)}, nil
}

// GetImage fetches the image, residual, and mask planes plus header values.
func (c *Client) GetImage(ctx context.Context, imagename string) (metrics.Image, error) {
	resp, err := c.client.GetImage(ctx, &pb.GetImageRequest{Imagename: imagename})
	if err != nil {
		return metrics.Image{}, fmt.Errorf("get image rpc: %w", err)
	}
	nx, ny := int(resp.Nx), int(resp.Ny)
	return metrics.Image{
		Name:     imagename,
		Image:    metrics.Plane{Data: resp.Image, NX: nx, NY: ny},
		Residual: metrics.Plane{Data: resp.Residual, NX: nx, NY: ny},
		Mask:     metrics.Plane{Data: resp.Mask, NX: nx, NY: ny},
		Beam: metrics.Beam{
			MajorArcsec: resp.BeamMajorArcsec,
			MinorArcsec: resp.BeamMinorArcsec,
			PosAngleDeg: resp.BeamPaDeg,
		},
		CellArcsec: resp.CellArcsec,
	}, nil
}

// CopyProducts copies a set of imaging products (image, model, residual,
// mask) under a new name. Used by the resume fast path.
func (c *Client) CopyProducts(ctx context.Context, source, dest string) error {
	if _, err := c.client.CopyProducts(ctx, &pb.CopyProductsRequest{Source: source, Dest: dest}); err != nil {
		return fmt.Errorf("copy products rpc: %w", err)
	}
	return nil
}

// #endregion imaging

// #region calibration

// Gaincal derives a gain table. Raises (returns error) on solve failure.
func (c *Client) Gaincal(ctx context.Context, p GaincalParams) error {
	spwmap := make([]int32, len(p.SpwMap))
	for i, v := range p.SpwMap {
		spwmap[i] = int32(v)
	}
	_, err := c.client.Gaincal(ctx, &pb.GaincalRequest{
		Vis:       p.Vis,
		Caltable:  p.Caltable,
		Field:     p.Field,
		Spw:       p.Spw,
		Refant:    p.Refant,
		Gaintype:  p.Gaintype,
		Calmode:   p.Calmode,
		Solint:    p.Solint,
		Minsnr:    p.MinSNR,
		Combine:   p.Combine,
		Gaintable: p.Gaintable,
		Spwmap:    spwmap,
		Interp:    p.Interp,
		Append:    p.Append,
	})
	if err != nil {
		return fmt.Errorf("gaincal rpc: %w", err)
	}
	return nil
}

// Applycal applies the accumulated gain-table chain.
func (c *Client) Applycal(ctx context.Context, p ApplycalParams) error {
	maps := make([]*pb.SpwMapList, len(p.SpwMaps))
	for i, m := range p.SpwMaps {
		lst := make([]int32, len(m))
		for j, v := range m {
			lst[j] = int32(v)
		}
		maps[i] = &pb.SpwMapList{Map: lst}
	}
	_, err := c.client.Applycal(ctx, &pb.ApplycalRequest{
		Vis:       p.Vis,
		Field:     p.Field,
		Spw:       p.Spw,
		Gaintable: p.Gaintable,
		Interp:    p.Interp,
		Spwmap:    maps,
		Applymode: p.ApplyMode,
		Calwt:     p.CalWt,
	})
	if err != nil {
		return fmt.Errorf("applycal rpc: %w", err)
	}
	return nil
}

// Clearcal clears applied calibration back to raw data.
func (c *Client) Clearcal(ctx context.Context, vis, field string) error {
	if _, err := c.client.Clearcal(ctx, &pb.ClearcalRequest{Vis: vis, Field: field}); err != nil {
		return fmt.Errorf("clearcal rpc: %w", err)
	}
	return nil
}

// Flagmanager saves, restores, or deletes a named flag version.
func (c *Client) Flagmanager(ctx context.Context, vis, mode, versionname string) error {
	if _, err := c.client.Flagmanager(ctx, &pb.FlagmanagerRequest{Vis: vis, Mode: mode, Versionname: versionname}); err != nil {
		return fmt.Errorf("flagmanager rpc: %w", err)
	}
	return nil
}

// CaltableFlagRows reads per-solution flag rows from a calibration table.
func (c *Client) CaltableFlagRows(ctx context.Context, caltable string) ([]flagging.SolutionRow, error) {
	resp, err := c.client.CaltableFlagRows(ctx, &pb.CaltableFlagRowsRequest{Caltable: caltable})
	if err != nil {
		return nil, fmt.Errorf("caltable flag rows rpc: %w", err)
	}
	rows := make([]flagging.SolutionRow, len(resp.Rows))
	for i, r := range resp.Rows {
		rows[i] = flagging.SolutionRow{SpwID: int(r.SpwId), Antenna: r.Antenna, Flagged: r.Flagged}
	}
	return rows, nil
}

// #endregion calibration

// #region sensitivity

// ApparentSensitivity returns the theoretical image noise for a visibility
// selection and Briggs robust value.
func (c *Client) ApparentSensitivity(ctx context.Context, vis []string, spw map[string]string, robust float64) (float64, float64, float64, error) {
	resp, err := c.client.ApparentSensitivity(ctx, &pb.ApparentSensitivityRequest{
		Vis:    vis,
		Spw:    spw,
		Robust: robust,
	})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("apparent sensitivity rpc: %w", err)
	}
	return resp.JyPerBeam, resp.BandwidthHz, resp.RefFreqHz, nil
}

// #endregion sensitivity

// #region metadata

// Fields lists the science field names of a visibility file.
func (c *Client) Fields(ctx context.Context, vis string) ([]string, error) {
	resp, err := c.client.Fields(ctx, &pb.FieldsRequest{Vis: vis})
	if err != nil {
		return nil, fmt.Errorf("fields rpc: %w", err)
	}
	return resp.Names, nil
}

// ScansForField lists the scan IDs observing a field.
func (c *Client) ScansForField(ctx context.Context, vis, field string) ([]int, error) {
	resp, err := c.client.ScansForField(ctx, &pb.ScansForFieldRequest{Vis: vis, Field: field})
	if err != nil {
		return nil, fmt.Errorf("scans for field rpc: %w", err)
	}
	return toInts(resp.Scans), nil
}

// SpwsForScan lists the spectral windows observed in a scan.
func (c *Client) SpwsForScan(ctx context.Context, vis string, scan int) ([]int, error) {
	resp, err := c.client.SpwsForScan(ctx, &pb.SpwsForScanRequest{Vis: vis, Scan: int32(scan)})
	if err != nil {
		return nil, fmt.Errorf("spws for scan rpc: %w", err)
	}
	return toInts(resp.Spws), nil
}

// TimesForScan returns the integration timestamps of a scan in MJD seconds.
func (c *Client) TimesForScan(ctx context.Context, vis string, scan int) ([]float64, error) {
	resp, err := c.client.TimesForScan(ctx, &pb.TimesForScanRequest{Vis: vis, Scan: int32(scan)})
	if err != nil {
		return nil, fmt.Errorf("times for scan rpc: %w", err)
	}
	return resp.MjdSeconds, nil
}

// ExposureTime returns the integration time of a (scan, spw) in seconds.
func (c *Client) ExposureTime(ctx context.Context, vis string, scan, spw int) (float64, error) {
	resp, err := c.client.ExposureTime(ctx, &pb.ExposureTimeRequest{Vis: vis, Scan: int32(scan), Spw: int32(spw)})
	if err != nil {
		return 0, fmt.Errorf("exposure time rpc: %w", err)
	}
	return resp.Seconds, nil
}

// AntennaNames lists the antennas of a visibility file.
func (c *Client) AntennaNames(ctx context.Context, vis string) ([]string, error) {
	resp, err := c.client.AntennaNames(ctx, &pb.AntennaNamesRequest{Vis: vis})
	if err != nil {
		return nil, fmt.Errorf("antenna names rpc: %w", err)
	}
	return resp.Names, nil
}

// AntennaOffsets returns per-antenna position offsets.
func (c *Client) AntennaOffsets(ctx context.Context, vis string) (map[string]Offset, error) {
	resp, err := c.client.AntennaOffsets(ctx, &pb.AntennaOffsetsRequest{Vis: vis})
	if err != nil {
		return nil, fmt.Errorf("antenna offsets rpc: %w", err)
	}
	out := make(map[string]Offset, len(resp.Offsets))
	for name, o := range resp.Offsets {
		out[name] = Offset{Longitude: o.Longitude, Latitude: o.Latitude}
	}
	return out, nil
}

// FieldIDsForScans lists the field IDs covered by a set of scans.
func (c *Client) FieldIDsForScans(ctx context.Context, vis string, scans []int) ([]int, error) {
	s := make([]int32, len(scans))
	for i, v := range scans {
		s[i] = int32(v)
	}
	resp, err := c.client.FieldIdsForScans(ctx, &pb.FieldIdsForScansRequest{Vis: vis, Scans: s})
	if err != nil {
		return nil, fmt.Errorf("field ids for scans rpc: %w", err)
	}
	return toInts(resp.FieldIds), nil
}

// SpwProperties lists the spectral windows of a visibility file with their
// band assignment and bandwidths.
func (c *Client) SpwProperties(ctx context.Context, vis string) ([]SpwProperty, error) {
	resp, err := c.client.SpwProperties(ctx, &pb.SpwPropertiesRequest{Vis: vis})
	if err != nil {
		return nil, fmt.Errorf("spw properties rpc: %w", err)
	}
	out := make([]SpwProperty, len(resp.Spws))
	for i, s := range resp.Spws {
		out[i] = SpwProperty{
			SpwID:         int(s.SpwId),
			Band:          s.Band,
			BandwidthHz:   s.BandwidthHz,
			EffectiveBWHz: s.EffectiveBwHz,
			MeanFreqHz:    s.MeanFreqHz,
		}
	}
	return out, nil
}

// #endregion metadata

// #region helpers

func toInts(v []int32) []int {
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = int(x)
	}
	return out
}

// #endregion helpers
