// Copyright (c) 2025, the podbox authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"PodCreateTimeout", PodCreateTimeout, 10 * time.Second, 60 * time.Second},
		{"PodReadyTimeout", PodReadyTimeout, 30 * time.Second, 10 * time.Minute},
		{"CleanupTimeout", CleanupTimeout, 30 * time.Second, 10 * time.Minute},
		{"RegistryPushTimeout", RegistryPushTimeout, 30 * time.Second, 10 * time.Minute},
		{"RegistryVerifyTimeout", RegistryVerifyTimeout, 10 * time.Second, 5 * time.Minute},
		{"MetricsPushTimeout", MetricsPushTimeout, 1 * time.Second, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestPollIntervalShorterThanReadyTimeout(t *testing.T) {
	if PodReadyPollInterval >= PodReadyTimeout {
		t.Errorf("PodReadyPollInterval (%v) should be well below PodReadyTimeout (%v)",
			PodReadyPollInterval, PodReadyTimeout)
	}
}

func TestCreateTimeoutShorterThanReadyTimeout(t *testing.T) {
	// Submission is a single API call; the readiness wait covers scheduling
	// and image pull and must dominate.
	if PodCreateTimeout >= PodReadyTimeout {
		t.Errorf("PodCreateTimeout (%v) should be less than PodReadyTimeout (%v)",
			PodCreateTimeout, PodReadyTimeout)
	}
}
