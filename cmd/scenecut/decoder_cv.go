//go:build withcv

/*
NAME
  decoder_cv.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package main

// Blank-imported so decode/cv's init() registers itself as
// detect.DefaultOpener. Only compiled when scenecut is built with
// -tags withcv, since it pulls in gocv and its cgo/OpenCV dependency.
import _ "github.com/framecut/scenecut/decode/cv"
