package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/danmuck/cpalctl/internal/cpal"
	"github.com/danmuck/cpalctl/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// TableView is the JSON form of a decoded table.
type TableView struct {
	Version            uint16     `json:"version"`
	NumPaletteEntries  uint16     `json:"num_palette_entries"`
	ColorRecords       []string   `json:"color_records"`
	ColorRecordIndices []uint16   `json:"color_record_indices"`
	Palettes           [][]string `json:"palettes"`
}

// EncodeRequest is the JSON form of cpal.Request. Colors are hex strings;
// an absent color_record_indices selects the default single palette.
type EncodeRequest struct {
	Version            uint16   `json:"version"`
	NumPaletteEntries  uint16   `json:"num_palette_entries"`
	ColorRecords       []string `json:"color_records"`
	ColorRecordIndices []uint16 `json:"color_record_indices"`
}

func (s *Server) RegisterRoutes() {
	r := s.router
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.Name,
			"version": version,
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":   true,
			"service": s.Name,
			"version": version,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/cpal/decode", s.handleDecode)
	r.POST("/cpal/encode", s.handleEncode)
}

func (s *Server) handleDecode(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
		return
	}
	strict, err := strconv.ParseBool(c.DefaultQuery("strict", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "strict must be a boolean"})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.MaxTableBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "table exceeds size limit"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tbl, err := cpal.Decode(body, offset)
	if err == nil && strict {
		err = tbl.Validate()
	}
	observability.RecordCodec(observability.OpDecode, len(body)-offset, err)
	if err != nil {
		_ = c.Error(err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewOf(tbl))
}

func (s *Server) handleEncode(c *gin.Context) {
	var in EncodeRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req, err := in.request()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tbl, err := cpal.Encode(req)
	if err != nil {
		observability.RecordCodec(observability.OpEncode, 0, err)
		_ = c.Error(err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if c.Query("format") == "fields" {
		observability.RecordCodec(observability.OpEncode, tbl.Size(), nil)
		c.JSON(http.StatusOK, gin.H{"tag": tbl.Tag, "size": tbl.Size(), "fields": tbl.Fields})
		return
	}
	data, err := tbl.Bytes()
	observability.RecordCodec(observability.OpEncode, len(data), err)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", data)
}

func (in EncodeRequest) request() (cpal.Request, error) {
	records := make([]cpal.ColorRecord, 0, len(in.ColorRecords))
	for _, s := range in.ColorRecords {
		rec, err := cpal.ParseHexColor(s)
		if err != nil {
			return cpal.Request{}, err
		}
		records = append(records, rec)
	}
	return cpal.Request{
		Version:            in.Version,
		NumPaletteEntries:  in.NumPaletteEntries,
		ColorRecords:       records,
		ColorRecordIndices: in.ColorRecordIndices,
	}, nil
}

func viewOf(t *cpal.Table) TableView {
	view := TableView{
		Version:            t.Version,
		NumPaletteEntries:  t.NumPaletteEntries,
		ColorRecords:       hexColors(t.ColorRecords),
		ColorRecordIndices: t.ColorRecordIndices,
		Palettes:           make([][]string, 0, t.NumPalettes()),
	}
	for _, p := range t.Palettes() {
		view.Palettes = append(view.Palettes, hexColors(p))
	}
	return view
}

func hexColors(records []cpal.ColorRecord) []string {
	out := make([]string, len(records))
	for i, c := range records {
		out[i] = c.String()
	}
	return out
}

func statusFor(err error) int {
	var fe cpal.FormatError
	var ve cpal.ValidationError
	if errors.As(err, &fe) || errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
