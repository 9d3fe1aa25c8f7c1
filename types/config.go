package types

import (
	"errors"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"text2phenotype.com/aptag/logger"
	"text2phenotype.com/aptag/utils"
)

const (
	// pipeline type
	POSTaggingPipeline = "pos_tagging"
)

type TaggerParams struct {
	Iterations         int     `yaml:"iterations" json:"iterations"`
	FrequencyThreshold int     `yaml:"frequency_threshold" json:"frequency_threshold"`
	AmbiguityThreshold float64 `yaml:"ambiguity_threshold" json:"ambiguity_threshold"`
	ResetHistory       *bool   `yaml:"reset_history" json:"reset_history"`
	Seed               int64   `yaml:"seed" json:"seed"`
	CorpusSeparator    string  `yaml:"corpus_separator" json:"corpus_separator"`
}

// ResetHistoryOrDefault resolves the reset flag; per-sentence reset is the
// default, false carries tag history across sentence boundaries.
func (params TaggerParams) ResetHistoryOrDefault() bool {
	if params.ResetHistory == nil {
		return true
	}
	return *params.ResetHistory
}

func (params TaggerParams) GetHashCode() uint64 {
	key := strings.Join([]string{
		"tagger",
		params.CorpusSeparator,
	}, "_")
	return utils.HashString(key)
}

type ParamsConfig struct {
	Tagger TaggerParams `yaml:"tagger" json:"tagger"`
}

type Configuration struct {
	Name     string       `json:"name"`
	FilePath string       `json:"file_path"`
	Params   ParamsConfig `yaml:"params" json:"params"`
	Pipeline string       `yaml:"pipeline" json:"pipeline"`
}

func LoadConfigurations(dirPath string) ([]Configuration, error) {
	aptLogger := logger.NewLogger("LoadConfigurations")

	files, err := ioutil.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	configChan := make(chan Configuration, len(files))
	for _, f := range files {
		// Skip dirs and non-yaml files
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}

		wg.Add(1)
		go func(file os.FileInfo) {
			defer wg.Done()
			cfg := Configuration{
				Name:     strings.Split(file.Name(), ".yaml")[0],
				FilePath: path.Join(dirPath, file.Name()),
			}
			buf, err := ioutil.ReadFile(cfg.FilePath)
			if err != nil {
				aptLogger.Err(err)
				return
			}
			if err := yaml.Unmarshal(buf, &cfg); err != nil {
				aptLogger.Err(err)
				return
			}

			// check pipeline type
			if cfg.Pipeline != POSTaggingPipeline {
				aptLogger.Err(errors.New("wrong pipeline type"))
				return
			}

			configChan <- cfg
		}(f)
	}

	go func() {
		wg.Wait()
		close(configChan)
	}()

	configs := make([]Configuration, 0, len(configChan))
	for cfg := range configChan {
		configs = append(configs, cfg)
	}
	return configs, nil
}
