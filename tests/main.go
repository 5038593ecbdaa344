package main

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/ngaut/log"

	"shardcommit/admission"
	"shardcommit/config"
	"shardcommit/service"
)

func main() {
	log.Info("Reading config")

	cfg := config.NewConfig()

	log.Info("Initializing frontend...")

	ctrl := admission.NewController(admission.ControllerConfig{
		OpTimeout:  cfg.OpTimeout,
		Percentile: cfg.AdmissionPercentile,
		Ceiling:    cfg.AdmissionCeiling,
		Floor:      cfg.AdmissionFloor,
	}, admission.NewLatencyTracker(cfg.LatencyWindow))

	frontend := service.NewTxFrontend(cfg.PeerList, true, cfg.Port, ctrl, cfg.OpTimeout)

	input := bufio.NewScanner(os.Stdin)

	log.Info("This test will:")
	log.Info("1. Write data for 4 keys through three-phase commit")
	log.Info("2. Read data from all nodes")
	log.Info("3. Modify data for key 'ana'")
	log.Info("4. Read data for all keys")

	log.Info("Press enter to start the test")
	input.Scan()
	log.Info("Starting to add data...")

	put("ana", []byte("Ana are mere"), frontend)
	put("vali", []byte("Vali are pere"), frontend)
	put("mihai", []byte("Mihai are portocale"), frontend)
	put("cata", []byte("Cata are gutui"), frontend)

	log.Infof("Admission limit after writes: %.2f tx/s", ctrl.CurrentLimit())

	log.Info("Press enter to read data")
	input.Scan()

	gather("ana", frontend)
	gather("vali", frontend)
	gather("mihai", frontend)
	gather("cata", frontend)

	log.Info("Press enter to modify data")
	input.Scan()

	put("ana", []byte("Ana are mere si ghiocei"), frontend)

	log.Info("Press enter to read new data")
	input.Scan()

	gather("ana", frontend)
	gather("vali", frontend)
	gather("mihai", frontend)
	gather("cata", frontend)
}

func put(key string, value []byte, coordinator service.Coordinator) {
	log.Infof("Trying to put {%v: %v}", key, string(value))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := coordinator.Put(ctx, key, value)
	if err != nil {
		log.Warnf("Could not put: {%v: %v} :: %v", key, string(value), err.Error())
	}
}

func gather(key string, coordinator service.Coordinator) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	peersData, err := coordinator.Gather(ctx, key)
	if err != nil {
		return
	}

	log.Infof("Getting: %v", key)
	for k, v := range peersData {
		log.Infof("%v = %v", k, string(v))
	}
}
