// Package minimaxspeech provides a Go client for the MiniMax speech API:
// text-to-speech synthesis, voice cloning, voice listing and file upload.
//
// # Basic Usage
//
//	client, err := minimaxspeech.NewClient("your-api-key", "your-group-id")
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	resp, err := client.Speech.SynthesizeSimple(ctx, "Hello, world!", minimaxspeech.VoiceWiseWoman)
//	if err != nil {
//	    return err
//	}
//	audio, err := resp.AudioBytes()
//
// Credentials can also come from the MINIMAX_API_KEY and MINIMAX_GROUP_ID
// environment variables:
//
//	client, err := minimaxspeech.NewClient("", "")
//
// # Voice Cloning
//
// Upload a sample, clone it under a custom ID, then synthesize with that ID:
//
//	info, err := client.File.Upload(ctx, "sample.mp3", minimaxspeech.FilePurposeVoiceClone)
//	if err != nil {
//	    return err
//	}
//
//	voiceID := minimaxspeech.GenerateVoiceID("myvoice")
//	_, err = client.Voice.CloneSimple(ctx, info.FileID, voiceID,
//	    minimaxspeech.WithCloneText("This is my cloned voice."))
//
// # Batch Synthesis
//
// SynthesizeBatch fans requests out over a bounded worker pool and returns
// results in input order:
//
//	results := client.Speech.SynthesizeBatch(ctx, reqs, 5,
//	    minimaxspeech.WithBatchRateLimit(rate.Every(time.Second), 1))
//	for i, r := range results {
//	    if r.Err != nil {
//	        log.Printf("request %d failed: %v", i, r.Err)
//	    }
//	}
//
// # Error Handling
//
//	resp, err := client.Speech.Synthesize(ctx, req)
//	if err != nil {
//	    if e, ok := minimaxspeech.AsError(err); ok {
//	        if e.IsRateLimit() {
//	            // Back off and retry
//	        }
//	    }
//	    return err
//	}
//
// # Configuration
//
//	client, err := minimaxspeech.NewClient("api-key", "group-id",
//	    minimaxspeech.WithBaseURL("https://api.minimax.io/v1"),
//	    minimaxspeech.WithTimeout(30*time.Second),
//	)
//
// For more information, see: https://platform.minimax.io/docs
package minimaxspeech
