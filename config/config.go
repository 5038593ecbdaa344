package config

import (
	"flag"
	"strings"
	"time"

	"shardcommit/repository/database"
)

type Config struct {
	WalConfig *database.WriteAheadLogConfig
	PeerList  []string
	Port      string

	// OpTimeout bounds a single cohort call in any phase.
	OpTimeout time.Duration
	// AdmissionPercentile of the commit-latency window fed to the
	// admission controller.
	AdmissionPercentile float64
	// AdmissionFloor and AdmissionCeiling bound the new-transaction rate
	// in tx/s.
	AdmissionFloor   float64
	AdmissionCeiling float64
	// LatencyWindow is the number of commit samples kept for percentile
	// queries.
	LatencyWindow int
}

func NewConfig() *Config {
	myPort := flag.String("port", "5000", "my port")
	peers := flag.String("peers", "", "peers's addresses")
	walDir := flag.String("wal-dir", "resources", "directory for write-ahead log segments")
	opTimeout := flag.Duration("op-timeout", 5*time.Second, "timeout budget for a single cohort call")
	percentile := flag.Float64("admission-percentile", 90, "commit latency percentile driving admission")
	floor := flag.Float64("admission-floor", 1, "lowest admissible new-transaction rate (tx/s)")
	ceiling := flag.Float64("admission-ceiling", 100, "highest admissible new-transaction rate (tx/s)")
	window := flag.Int("latency-window", 128, "number of commit latency samples kept")
	flag.Parse()

	walConfig := &database.WriteAheadLogConfig{
		Dir:         *walDir,
		MaxFileSize: 100,
		Prefix:      *myPort,
	}

	peerList := strings.Split(*peers, ",")

	if peerList[0] == "" {
		peerList = make([]string, 0)
	}

	return &Config{
		WalConfig:           walConfig,
		PeerList:            peerList,
		Port:                *myPort,
		OpTimeout:           *opTimeout,
		AdmissionPercentile: *percentile,
		AdmissionFloor:      *floor,
		AdmissionCeiling:    *ceiling,
		LatencyWindow:       *window,
	}
}
