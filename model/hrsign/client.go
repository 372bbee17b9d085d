package hrsign

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"strings"
	"time"
)

// Credential 调用远端考勤系统所需的会话凭证，由登录方（webview侧）获取后交给本服务保管
type Credential struct {
	Cookie string `json:"cookie"` //完整的Cookie请求头
	Csrf   string `json:"csrf"`   //X-CSRF-TOKEN
}

type HrResponseCommon struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Client 远端考勤系统的HTTP客户端
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = time.Duration(time.Second * 5)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{Transport: &http.Transport{ //对客户端进行一些配置
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		}, Timeout: timeout},
	}
}

// postJSON 发送一次带会话凭证的JSON请求，并把响应体读出来
func (c *Client) postJSON(cred *Credential, path string, reqBody interface{}) (body []byte, err error) {
	var request *http.Request
	var resp *http.Response
	URL := c.baseURL + path
	bodymarshal, err := json.Marshal(reqBody)
	if err != nil {
		return
	}
	request, err = http.NewRequest(http.MethodPost, URL, strings.NewReader(string(bodymarshal)))
	if err != nil {
		return
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Cookie", cred.Cookie)
	request.Header.Set("X-CSRF-TOKEN", cred.Csrf)
	resp, err = c.client.Do(request)
	if err != nil {
		return
	}
	defer resp.Body.Close()
	body, err = ioutil.ReadAll(resp.Body) //把请求到的body转化成byte[]
	if err != nil {
		return
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("远端考勤系统响应异常：" + resp.Status)
	}
	return body, nil
}
