package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"text2phenotype.com/aptag/api"
	"text2phenotype.com/aptag/corpus"
	"text2phenotype.com/aptag/logger"
	"text2phenotype.com/aptag/pipeline"
	"text2phenotype.com/aptag/pos"
	"text2phenotype.com/aptag/types"
	"text2phenotype.com/aptag/utils"
	"text2phenotype.com/aptag/worker"
)

type Config struct {
	ConfigPath    string `envconfig:"POSTAG_CONFIG_PATH" required:"true"`
	ModelPath     string `envconfig:"POSTAG_MODEL_PATH" required:"true"`
	CorpusPath    string `envconfig:"POSTAG_CORPUS_PATH"`
	RestAPIActive bool   `envconfig:"POSTAG_REST_API_ACTIVE" default:"false"`
	RestAPIPort   string `envconfig:"POSTAG_REST_API_PORT" default:"10000"`
}

const pipelineStartMaxRetries = 5

func main() {
	logger.SetupLogging()
	aptLogger := logger.NewLogger("Main")
	train := flag.Bool("train", false, "a bool")
	wrapLogs := flag.Bool("wrap-logs", false, "a bool")
	flag.Parse()

	// forward a child process's stderr as structured logs and exit with it
	if *wrapLogs {
		args := flag.Args()
		if len(args) == 0 {
			aptLogger.Fatal().Caller().Msg("-wrap-logs requires an executable to launch")
			os.Exit(1)
		}
		logger.WrapProcess(args[0], args[1:]...)
		return
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		aptLogger.Fatal().Caller().Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}

	// train a model from the gold corpus and exit
	if *train {
		if err := trainModel(&aptLogger, config); err != nil {
			aptLogger.Fatal().Caller().Err(err).Msg("Failed to train POS model")
			os.Exit(1)
		}
		aptLogger.Info().Msgf("Model saved to %s. Exit...", config.ModelPath)
		return
	}

	//Load Pipeline
	pipelineChannel := make(chan pipeline.Pipeline)
	go func() {
		for retry := 0; retry < pipelineStartMaxRetries; retry++ {
			cfgs, err := types.LoadConfigurations(config.ConfigPath)
			if err != nil {
				aptLogger.Err(err).Msg("Failed to load configurations. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			aptLogger.Info().Msgf("Loaded %d configurations", len(cfgs))
			aptLogger.Info().Msg("Starting pipeline loading")

			pipelineParams := pipeline.POSTaggingParams{
				ModelPath: config.ModelPath,
			}
			if len(cfgs) > 0 {
				pipelineParams.Configuration = cfgs[0]
			}
			ppln, err := pipeline.POSTagging(pipelineParams)
			if err != nil {
				aptLogger.Err(err).Msg("Failed to start POS tagging pipeline. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			utils.GlobalStringStore().Lock()
			aptLogger.Info().Msg("Pipeline loaded")
			pipelineChannel <- ppln
			return
		}
		aptLogger.Fatal().Caller().Msg("Could not start pipeline after 5 retries, exiting")
		os.Exit(1)
	}()

	// block until pipeline loads
	ppln := <-pipelineChannel

	if config.RestAPIActive {
		go func() {
			aptLogger.Info().Msg("Starting API service")
			apiRequest := &api.Request{
				Pipeline: ppln,
			}
			http.HandleFunc("/", apiRequest.ProcessData)
			host := fmt.Sprintf(":%s", config.RestAPIPort)
			aptLogger.Info().Msgf("REST API on %s", host)
			err := http.ListenAndServe(host, nil)
			aptLogger.Fatal().Caller().Err(err).Msg("REST API stopped with error")
		}()
	}

	aptLogger.Info().Msg("Start POS tagging Worker")
	for {
		rmqWorker, err := worker.New(ppln)
		if err != nil {
			aptLogger.Fatal().Err(err).Msg("Could not initialize RMQ worker")
			os.Exit(1)
		}
		err = rmqWorker.StartWorker()
		if err != nil {
			aptLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
			time.Sleep(5 * time.Second)
		}
	}
}

func trainModel(aptLogger *zerolog.Logger, config Config) error {
	if config.CorpusPath == "" {
		return fmt.Errorf("POSTAG_CORPUS_PATH is required in train mode")
	}
	cfgs, err := types.LoadConfigurations(config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configurations: %w", err)
	}
	params := types.TaggerParams{}
	if len(cfgs) > 0 {
		params = cfgs[0].Params.Tagger
	}
	sep := params.CorpusSeparator
	if sep == "" {
		sep = corpus.DefaultSeparator
	}
	sentences, err := corpus.LoadDir(config.CorpusPath, sep)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	aptLogger.Info().Msgf("Loaded %d training sentences", len(sentences))

	trainerConfig := pos.DefaultTrainerConfig()
	if params.Iterations > 0 {
		trainerConfig.Iterations = params.Iterations
	}
	if params.FrequencyThreshold > 0 {
		trainerConfig.FrequencyThreshold = params.FrequencyThreshold
	}
	if params.AmbiguityThreshold > 0 {
		trainerConfig.AmbiguityThreshold = params.AmbiguityThreshold
	}
	trainerConfig.ResetHistory = params.ResetHistoryOrDefault()
	if params.Seed != 0 {
		trainerConfig.Rand = rand.New(rand.NewSource(params.Seed))
	}

	model, err := pos.Train(sentences, trainerConfig)
	if err != nil {
		return err
	}
	return model.Save(config.ModelPath)
}
