package service

import "math"

// maxLogit 指数截断界。本引擎参数范围内远达不到，仅防御异常调用方；
// 取 34 保证截断后 p 在 float64 下仍严格落在 (0,1) 内
const maxLogit = 34.0

// PSuccess 双参数逻辑斯蒂模型：p = 1/(1+exp(-a*(theta-b)))。
// a>0 时对 theta 严格递增，theta==b 时恰为 0.5
func PSuccess(a, b, theta float64) float64 {
	z := a * (theta - b)
	if z > maxLogit {
		z = maxLogit
	} else if z < -maxLogit {
		z = -maxLogit
	}
	return 1.0 / (1.0 + math.Exp(-z))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
