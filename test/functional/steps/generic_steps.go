package steps

import (
	"encoding/json"
	"time"
)

func (fc *FeatureContext) waitForDuration(duration string) error {
	d, err := time.ParseDuration(duration)
	if err != nil {
		return err
	}

	time.Sleep(d)
	return nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}

func (fc *FeatureContext) theErrorShouldMentionTheField(field string) error {
	var data struct {
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	}
	fc.require.NoError(json.NewDecoder(fc.response.Body).Decode(&data))
	if _, known := fc.fieldIDs[field]; known {
		field = fc.unique(field)
	}
	fc.require.Contains(data.Fields, field)
	return nil
}
