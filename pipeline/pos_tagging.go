package pipeline

import (
	"encoding/json"

	"text2phenotype.com/aptag/logger"
	"text2phenotype.com/aptag/nlp"
	"text2phenotype.com/aptag/pos"
	"text2phenotype.com/aptag/types"
)

type POSTaggingParams struct {
	ModelPath     string              `json:"model_path"`
	Configuration types.Configuration `json:"configuration"`
}

// POSTagging assembles the document pipeline: sentence detection,
// tokenization, tagging, response building.
func POSTagging(params POSTaggingParams) (Pipeline, error) {
	taggerParams := params.Configuration.Params.Tagger
	aptLogger := logger.NewLogger("POS tagging pipeline")
	errLogger := aptLogger.With().Caller().Logger()
	aptLogger.Info().
		Interface("params", params).
		Uint64("config_hash", taggerParams.GetHashCode()).
		Msg("Starting POS tagging pipeline (see parameters in 'params' field)")

	model, err := pos.LoadModelFromFile(params.ModelPath)
	if err != nil {
		errLogger.Err(err).
			Str("pos_model_location", params.ModelPath).
			Msg("Failed to load POS model")
		return nil, err
	}

	sentenceDetector := nlp.NewSentenceDetector()

	tokenizer, err := NewTokenizer()
	if err != nil {
		errLogger.Err(err).Msg("Failed to create tokenizer")
		return nil, err
	}

	tagger := NewPOSTagger(model, taggerParams.ResetHistoryOrDefault())
	responseBuilder := NewTaggingResult()

	return func(request Request) <-chan string {
		responseChan := make(chan string)
		pplnLog := aptLogger.With().Str("tid", request.Tid).Logger()
		pplnLog.Info().Msg("Started POS tagging pipeline")
		errLog := pplnLog.With().Caller().Logger()

		go func() {
			var in = make(chan string, 1)

			sd := sentenceDetector(in)
			tok := tokenizer(sd)
			tag := tagger(tok)
			result := responseBuilder(tag, request)

			in <- request.Text
			close(in)

			res := <-result

			buf, err := json.Marshal(res.Data)
			if err != nil {
				errLog.Err(err).Str("tid", request.Tid).Msg("Failed to marshall response")
			}
			pplnLog.Info().Msg("Finished POS tagging pipeline")
			responseChan <- string(buf)
		}()

		return responseChan
	}, nil
}
