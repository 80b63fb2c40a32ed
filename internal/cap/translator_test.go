package cap_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alerting-gov/broadcast-api/internal/cap"
)

const alertDocument = `<?xml version="1.0" encoding="UTF-8"?>
<alert xmlns="urn:oasis:names:tc:emergency:cap:1.2">
  <identifier>4f6d28f10ab9aa992b26f573</identifier>
  <sender>www.gov.uk/environment-agency</sender>
  <sent>2021-05-09T11:09:48-00:00</sent>
  <status>Actual</status>
  <msgType>Alert</msgType>
  <scope>Public</scope>
  <info>
    <language>en-GB</language>
    <category>Met</category>
    <event>053/055 Issue Severe Flood Warning EA</event>
    <urgency>Immediate</urgency>
    <severity>Severe</severity>
    <certainty>Observed</certainty>
    <expires>2021-05-10T11:09:48+00:00</expires>
    <description>A severe flood warning has been issued. Evacuate now.</description>
    <area>
      <areaDesc>River Steeping in Wainfleet All Saints</areaDesc>
      <polygon>53.10569,0.24453 53.10593,0.24430 53.10601,0.24375 53.10569,0.24453</polygon>
    </area>
  </info>
</alert>`

const cancelDocument = `<?xml version="1.0" encoding="UTF-8"?>
<alert xmlns="urn:oasis:names:tc:emergency:cap:1.2">
  <identifier>PAAQ-4-mlaq79</identifier>
  <sender>ntwc@noaa.gov</sender>
  <sent>2021-05-09T12:00:00-00:00</sent>
  <status>Actual</status>
  <msgType>Cancel</msgType>
  <scope>Public</scope>
  <references>ntwc@noaa.gov,PAAQ-1-mlaq79,2021-05-09T02:20:06-00:00 ntwc@noaa.gov,PAAQ-2-mlaq79,2021-05-09T03:31:46-00:00</references>
</alert>`

func TestTranslate_Alert(t *testing.T) {
	req, err := cap.Translate([]byte(alertDocument))
	require.NoError(t, err)

	assert.Equal(t, cap.MsgTypeAlert, req.MsgType)
	assert.Equal(t, "4f6d28f10ab9aa992b26f573", req.Reference)
	assert.Equal(t, "053/055 Issue Severe Flood Warning EA", req.CapEvent)
	assert.Equal(t, "A severe flood warning has been issued. Evacuate now.", req.Content)
	assert.Nil(t, req.References)

	require.NotNil(t, req.Expires)
	assert.Equal(t, time.Date(2021, 5, 10, 11, 9, 48, 0, time.UTC), req.Expires.UTC())

	require.Len(t, req.Areas, 1)
	area := req.Areas[0]
	assert.Equal(t, "River Steeping in Wainfleet All Saints", area.Name)
	require.Len(t, area.Polygons, 1)
	require.Len(t, area.Polygons[0], 4)
	assert.Equal(t, [2]float64{0.24453, 53.10569}, area.Polygons[0][0], "polygon pairs are stored longitude-first")
}

func TestTranslate_Cancel(t *testing.T) {
	req, err := cap.Translate([]byte(cancelDocument))
	require.NoError(t, err)

	assert.Equal(t, cap.MsgTypeCancel, req.MsgType)
	assert.Equal(t, "PAAQ-4-mlaq79", req.Reference)
	assert.Empty(t, req.Areas)

	require.NotNil(t, req.References)
	refs := req.ReferenceList()
	assert.Equal(t, []string{
		"ntwc@noaa.gov",
		"PAAQ-1-mlaq79",
		"2021-05-09T02:20:06-00:00 ntwc@noaa.gov",
		"PAAQ-2-mlaq79",
		"2021-05-09T03:31:46-00:00",
	}, refs)
}

func TestTranslate_MalformedXML(t *testing.T) {
	_, err := cap.Translate([]byte("<alert><identifier>broken"))
	assert.Error(t, err)
}

func TestTranslate_BadPolygon(t *testing.T) {
	doc := `<alert xmlns="urn:oasis:names:tc:emergency:cap:1.2">
  <identifier>x</identifier>
  <msgType>Alert</msgType>
  <info>
    <description>d</description>
    <area>
      <areaDesc>a</areaDesc>
      <polygon>53.1,0.2 not-a-number,0.3</polygon>
    </area>
  </info>
</alert>`

	_, err := cap.Translate([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "polygon")
}

func TestTranslate_BadExpires(t *testing.T) {
	doc := `<alert xmlns="urn:oasis:names:tc:emergency:cap:1.2">
  <identifier>x</identifier>
  <msgType>Alert</msgType>
  <info>
    <expires>tomorrow</expires>
    <description>d</description>
  </info>
</alert>`

	_, err := cap.Translate([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expires")
}

func TestReferenceList_TrimsAndDropsEmpty(t *testing.T) {
	refs := " a, b ,,c "
	req := &cap.BroadcastRequest{References: &refs}

	assert.Equal(t, []string{"a", "b", "c"}, req.ReferenceList())
}

func TestReferenceList_NilWhenAbsent(t *testing.T) {
	req := &cap.BroadcastRequest{}
	assert.Nil(t, req.ReferenceList())
}

func TestSchemaValidator(t *testing.T) {
	v := cap.NewSchemaValidator()

	tests := []struct {
		name     string
		document string
		schema   string
		want     bool
	}{
		{
			name:     "valid alert",
			document: alertDocument,
			schema:   cap.SchemaCAPv12,
			want:     true,
		},
		{
			name:     "valid cancel",
			document: cancelDocument,
			schema:   cap.SchemaCAPv12,
			want:     true,
		},
		{
			name:     "unknown schema name",
			document: alertDocument,
			schema:   "CAP-v1.1",
			want:     false,
		},
		{
			name:     "not xml",
			document: `{"msgType": "Alert"}`,
			schema:   cap.SchemaCAPv12,
			want:     false,
		},
		{
			name:     "wrong namespace",
			document: `<alert xmlns="urn:example:other"><identifier>x</identifier><msgType>Alert</msgType></alert>`,
			schema:   cap.SchemaCAPv12,
			want:     false,
		},
		{
			name:     "missing identifier",
			document: `<alert xmlns="urn:oasis:names:tc:emergency:cap:1.2"><msgType>Alert</msgType></alert>`,
			schema:   cap.SchemaCAPv12,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate([]byte(tt.document), tt.schema))
		})
	}
}

func TestValidateRequest(t *testing.T) {
	valid := func() *cap.BroadcastRequest {
		return &cap.BroadcastRequest{
			MsgType:   cap.MsgTypeAlert,
			Reference: "ref-1",
			Content:   "some content",
		}
	}

	t.Run("valid alert", func(t *testing.T) {
		assert.NoError(t, cap.ValidateRequest(valid()))
	})

	t.Run("cancel without content", func(t *testing.T) {
		req := valid()
		req.MsgType = cap.MsgTypeCancel
		req.Content = ""
		assert.NoError(t, cap.ValidateRequest(req))
	})

	t.Run("missing msgType", func(t *testing.T) {
		req := valid()
		req.MsgType = ""
		err := cap.ValidateRequest(req)
		require.Error(t, err)
		assert.Equal(t, "msgType is a required property", err.Error())
	})

	t.Run("unknown msgType", func(t *testing.T) {
		req := valid()
		req.MsgType = "Update"
		err := cap.ValidateRequest(req)
		require.Error(t, err)
		assert.Equal(t, "msgType is not one of [Alert, Cancel]", err.Error())
	})

	t.Run("alert without content", func(t *testing.T) {
		req := valid()
		req.Content = ""
		err := cap.ValidateRequest(req)
		require.Error(t, err)
		assert.Equal(t, "content is a required property", err.Error())
	})

	t.Run("area without name", func(t *testing.T) {
		req := valid()
		req.Areas = []cap.Area{{Polygons: [][][2]float64{{{0, 0}}}}}
		err := cap.ValidateRequest(req)
		require.Error(t, err)
		assert.Equal(t, "name is a required property", err.Error())
	})
}
