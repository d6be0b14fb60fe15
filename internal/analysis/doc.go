// Package analysis summarizes field datasets frame by frame.
//
//   - [FrameStats]: min, max, mean and spread of one frame
//   - [Frames]: statistics for every frame of a dataset
//   - [Series]: one statistic across time, ready for charting
//
// Vector frames are summarized by cell magnitude.
package analysis
