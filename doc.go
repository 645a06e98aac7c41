// Package strokenet classifies freehand mouse strokes as one of two board
// symbols (O or X) with a small feed-forward network.
//
// The pipeline, leaf to root:
//
//	stroke/      points, bounding boxes, the largest-gap two-shape split,
//	              unit-step interpolation and a capture Recorder
//	raster/      padded rasterization, writing emulation, Gaussian
//	              downscale to 50×50, flattening to one feature row
//	matrix/      dense row-major matrix engine every stage computes with
//	classifier/  two-layer sigmoid network trained by batch gradient
//	              descent with L2 regularization; predict; gradient check
//	dataset/     flat text feature and label files (read and append)
//	symbol/      label ↔ symbol mapping and turn checking
//	config/      YAML run configuration for the CLI
//
// Data flow:
//
//	path → Separate → Rasterize → EmulateWriting → Downscale → FlattenRows
//	     → Classifier.PredictRow → label → symbol.Turn.Accept
//
// The command in cmd/strokenet trains, predicts, renders previews and
// collects examples:
//
//	go run ./cmd/strokenet synth -rings 20 -crosses 20
//	go run ./cmd/strokenet train -iterations 500 -theta1 t1.txt -theta2 t2.txt
//	go run ./cmd/strokenet predict -theta1 t1.txt -theta2 t2.txt -points drawing.txt
package strokenet
