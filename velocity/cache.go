// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package velocity

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/george9932/LCS-FTLE-Optimized/grid"
	"github.com/george9932/LCS-FTLE-Optimized/textio"
)

// Cache holds at most two velocity snapshots resident at any time: the
// pair bracketing the time currently being integrated (§2.3). Snapshots
// are read lazily from text files named {DataPath}/{FilePrefix}{t:.Pf}.txt
// and evicted as soon as they fall outside the bracket.
type Cache struct {
	DataGrid   *grid.Grid
	DataPath   string
	FilePrefix string
	TMin       float64
	TMax       float64
	DtData     float64
	Precision  int // P: smallest digit count such that DtData·10^P is integral

	nMax int // index of the last available snapshot: t_nMax = TMax

	byIndex map[int]*Snapshot // resident snapshots, keyed by k in t_k = TMin + k·DtData
}

// NewCache returns a Cache with nothing loaded. tMax is the time of the
// last available snapshot, used to recognise when a bracket request
// lands on the last snapshot and has no later neighbour to load.
func NewCache(dataGrid *grid.Grid, dataPath, filePrefix string, tMin, tMax, dtData float64, precision int) *Cache {
	return &Cache{
		DataGrid:   dataGrid,
		DataPath:   dataPath,
		FilePrefix: filePrefix,
		TMin:       tMin,
		TMax:       tMax,
		DtData:     dtData,
		Precision:  precision,
		nMax:       int(math.Round((tMax - tMin) / dtData)),
		byIndex:    make(map[int]*Snapshot),
	}
}

// Filename returns the path of the snapshot file for index k, per the
// {data_path}/{file_prefix}{t:.Pf}.txt convention of §6
func (o *Cache) Filename(k int) string {
	t := o.TMin + float64(k)*o.DtData
	format := io.Sf("%%s/%%s%%.%df.txt", o.Precision)
	return io.Sf(format, o.DataPath, o.FilePrefix, t)
}

// IndexForTime returns the snapshot index k such that t_k ≤ t, i.e. the
// left bracket of t. Indices are nonnegative by construction of the
// temporal window.
func (o *Cache) IndexForTime(t float64) int {
	k := int(math.Floor((t-o.TMin)/o.DtData + 1e-9))
	if k < 0 {
		k = 0
	}
	if k > o.nMax {
		k = o.nMax
	}
	return k
}

// load returns snapshot k, reading its file if not already resident
func (o *Cache) load(k int) (s *Snapshot, err error) {
	if s, ok := o.byIndex[k]; ok {
		return s, nil
	}
	t := o.TMin + float64(k)*o.DtData
	v, tFile, errR := textio.ReadSnapshot(o.Filename(k), o.DataGrid)
	if errR != nil {
		err = chk.Err("cache: cannot load snapshot k=%d: %v", k, errR)
		return
	}
	if math.Abs(tFile-t) > 1e-6 {
		err = chk.Err("cache: snapshot file %q carries t=%g, expected t=%g", o.Filename(k), tFile, t)
		return
	}
	s = &Snapshot{T: t, V: v}
	o.byIndex[k] = s
	return
}

// Bracket returns the pair of snapshots (s0,s1) with s0.T ≤ t ≤ s1.T,
// loading whichever of the two is not already resident and evicting
// every other snapshot so that ownership stays bounded to this pair. If
// t coincides exactly with the last available snapshot, there is no
// k+1 neighbour to load: s0 and s1 are both set to that same snapshot
// rather than reaching for a nonexistent file. A Sampler holding that
// degenerate pair is only well-defined at exactly t=TMax.
func (o *Cache) Bracket(t float64) (s0, s1 *Snapshot, err error) {
	k := o.IndexForTime(t)
	s0, err = o.load(k)
	if err != nil {
		return
	}
	if k >= o.nMax {
		s1 = s0
	} else {
		s1, err = o.load(k + 1)
		if err != nil {
			return
		}
	}
	keep1 := k
	if s1 != s0 {
		keep1 = k + 1
	}
	for idx := range o.byIndex {
		if idx != k && idx != keep1 {
			delete(o.byIndex, idx)
		}
	}
	return
}
