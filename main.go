package main

import (
	"net"

	"github.com/ngaut/log"
	"google.golang.org/grpc"

	"shardcommit/admission"
	"shardcommit/config"
	"shardcommit/controller"
	pb "shardcommit/grpc/proto-files/cohort"
	"shardcommit/repository/database"
	"shardcommit/service"
)

func main() {
	done := make(chan bool)

	log.Info("Reading config")
	cfg := config.NewConfig()

	log.Info("Initializing caches...")

	dataCache := database.NewMemoryDatabase()
	txCache := database.NewMemoryDatabase()

	log.Info("Initializing wal...")

	wal, err := database.NewFileDatabase(cfg.WalConfig)
	if err != nil {
		log.Fatalf("Could not create local write-ahead log: %v", err)
	}

	log.Info("Initializing admission controller...")

	tracker := admission.NewLatencyTracker(cfg.LatencyWindow)
	ctrl := admission.NewController(admission.ControllerConfig{
		OpTimeout:  cfg.OpTimeout,
		Percentile: cfg.AdmissionPercentile,
		Ceiling:    cfg.AdmissionCeiling,
		Floor:      cfg.AdmissionFloor,
	}, tracker)

	log.Info("Initializing frontend for recovery...")
	frontend := service.NewTxFrontend(cfg.PeerList, false, cfg.Port, ctrl, cfg.OpTimeout)

	log.Info("Initializing participant...")

	participantService := service.NewTPCParticipant(wal, dataCache, txCache, frontend)

	log.Info("Recovering last state...")
	err = participantService.Recover()
	if err != nil {
		log.Fatalf("Could not recover state: %v", err)
	}

	cohortServer := controller.NewCohortServer(participantService)

	log.Infof("Getting listener on: %v", cfg.Port)

	lis, err := net.Listen("tcp", "127.0.0.1:"+cfg.Port)
	if err != nil {
		log.Fatalf("Failed to start listening: %v", err)
	}

	log.Info("Starting server...")

	grpcServer := grpc.NewServer()
	pb.RegisterCohortServer(grpcServer, cohortServer)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to start serving: %v", err)
		}
	}()

	<-done
}
