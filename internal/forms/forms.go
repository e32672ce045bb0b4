package forms

import "github.com/podolabs/frontdesk/internal/domain"

// All lists every follow-up form. Order within a category is the button
// order shown under a reply.
var All = []*Form{
	{
		ActionID:     "open_parking_modal",
		CallbackID:   "parking_form_submit",
		ButtonLabel:  "주차 등록",
		Title:        "주차 등록 신청",
		Category:     domain.Category{Base: domain.CategoryParking},
		SummaryTitle: "[주차 등록 신청]",
		Fields: []Field{
			{BlockID: "email_block", ActionID: "owner_email", Label: "소유주 이메일 주소", SummaryLabel: "- 이메일"},
			{BlockID: "name_block", ActionID: "owner_name", Label: "소유주 성함", SummaryLabel: "- 성함"},
			{BlockID: "phone_block", ActionID: "phone_number", Label: "휴대전화 번호", SummaryLabel: "- 휴대전화"},
			{BlockID: "car_number_block", ActionID: "car_number", Label: "차량번호", SummaryLabel: "- 차량번호"},
			{BlockID: "car_type_block", ActionID: "car_type", Label: "차종 (예: 소나타, SUV 등)", SummaryLabel: "- 차종"},
			{
				BlockID: "ev_block", ActionID: "is_ev", Label: "전기차 여부", Kind: FieldSelect,
				Options:      []Option{{Label: "예", Value: "yes"}, {Label: "아니오", Value: "no"}},
				SummaryLabel: "- 전기차",
			},
		},
	},
	{
		ActionID:     "open_car_edit_modal",
		CallbackID:   "car_edit_form_submit",
		ButtonLabel:  "차량 해지/변경",
		Title:        "차량 해지/변경",
		Category:     domain.Category{Base: domain.CategoryParking},
		SummaryTitle: "[차량 해지/변경]",
		Fields: []Field{
			{BlockID: "old_car_block", ActionID: "old_car_number", Label: "삭제할 차량번호", SummaryLabel: "- 기존 차량번호"},
			{BlockID: "new_car_block", ActionID: "new_car_number", Label: "새로 등록할 차량번호 (없으면 비워둠)", SummaryLabel: "- 새 차량번호", EmptyValue: "(미등록)"},
		},
	},
	{
		ActionID:     "open_elevator_noise_modal",
		CallbackID:   "elevator_noise_form_submit",
		ButtonLabel:  "엘리베이터 소음/충격",
		Title:        "엘리베이터 소음 신고",
		Category:     domain.Category{Base: domain.CategoryFacility},
		SummaryTitle: "[엘리베이터 소음 신고]",
		Fields: []Field{
			{
				BlockID: "which_elevator_block", ActionID: "which_elevator", Label: "엘리베이터 종류", Kind: FieldSelect,
				Options:      []Option{{Label: "고층", Value: "high"}, {Label: "저층", Value: "low"}, {Label: "화물", Value: "cargo"}},
				SummaryLabel: "- 종류",
			},
			{BlockID: "time_block", ActionID: "time_info", Label: "층수/시간대 (구체적으로)", SummaryLabel: "- 층수/시간대"},
		},
	},
	{
		ActionID:     "open_desk_drawer_modal",
		CallbackID:   "desk_drawer_form_submit",
		ButtonLabel:  "서랍 비번 초기화",
		Title:        "서랍 해제 요청",
		Category:     domain.Category{Base: domain.CategoryFacility},
		SummaryTitle: "[서랍 비번 해제 요청]",
		Fields: []Field{
			{BlockID: "location_block", ActionID: "desk_location", Label: "서랍 위치 (층/번호)", SummaryLabel: "- 위치(층/번호)"},
			{BlockID: "reason_block", ActionID: "reason", Label: "기타 요청 사항", SummaryLabel: "- 요청 사항", EmptyValue: "(없음)"},
		},
	},
	{
		ActionID:     "open_network_issue_modal",
		CallbackID:   "network_issue_form_submit",
		ButtonLabel:  "사이트 느림/접속 불가",
		Title:        "네트워크/사이트 느림 문의",
		Category:     domain.Category{Base: domain.CategoryNetwork},
		SummaryTitle: "[네트워크 이슈]",
		Fields: []Field{
			{BlockID: "site_block", ActionID: "site_url", Label: "접속 시도 URL (느린 사이트)", SummaryLabel: "- 사이트"},
			{BlockID: "time_block", ActionID: "time_info", Label: "발생 시간대/지속 시간", SummaryLabel: "- 시간대"},
			{BlockID: "mac_block", ActionID: "mac_address", Label: "PC MAC주소 (가능하면)", SummaryLabel: "- MAC주소"},
		},
	},
	{
		ActionID:     "open_ip_fix_modal",
		CallbackID:   "ip_fix_form_submit",
		ButtonLabel:  "공인/내부 IP 고정",
		Title:        "IP 고정 요청",
		Category:     domain.Category{Base: domain.CategoryNetwork},
		SummaryTitle: "[IP 고정 요청]",
		Fields: []Field{
			{BlockID: "pc_mac_block", ActionID: "mac_address", Label: "PC MAC 주소", SummaryLabel: "- MAC 주소"},
			{BlockID: "ip_block", ActionID: "preferred_ip", Label: "원하는 고정 IP (없으면 비워둠)", SummaryLabel: "- 희망 IP", EmptyValue: "(미지정)"},
		},
	},
	{
		ActionID:     "open_account_recovery_modal",
		CallbackID:   "account_recovery_form_submit",
		ButtonLabel:  "비밀번호 찾기 문의",
		Title:        "비밀번호 찾기 문의",
		Category:     domain.Category{Base: domain.CategoryHomepage},
		SummaryTitle: "[비밀번호 찾기 문의]",
		Fields: []Field{
			{BlockID: "email_block", ActionID: "email_value", Label: "계정 이메일 주소", SummaryLabel: "- 계정 이메일"},
			{BlockID: "issue_block", ActionID: "issue_description", Label: "상세 문제 (메일이 안 온다 등)", SummaryLabel: "- 문제 상황"},
		},
	},
	{
		ActionID:     "open_id_change_modal",
		CallbackID:   "id_change_form_submit",
		ButtonLabel:  "아이디 변경",
		Title:        "로그인 이메일 변경",
		Category:     domain.Category{Base: domain.CategoryHomepage},
		SummaryTitle: "[아이디 변경 신청]",
		Fields: []Field{
			{BlockID: "current_email_block", ActionID: "current_email", Label: "현재 이메일 주소", SummaryLabel: "- 현재 이메일"},
			{BlockID: "new_email_block", ActionID: "new_email", Label: "변경할 이메일 주소", SummaryLabel: "- 변경할 이메일"},
		},
	},
	{
		ActionID:     "open_account_delete_modal",
		CallbackID:   "account_delete_form_submit",
		ButtonLabel:  "계정 탈퇴",
		Title:        "계정 탈퇴 신청",
		Category:     domain.Category{Base: domain.CategoryHomepage},
		SummaryTitle: "[계정 탈퇴 신청]",
		Fields: []Field{
			{BlockID: "email_block", ActionID: "email_value", Label: "현재 로그인 이메일", SummaryLabel: "- 이메일"},
			{BlockID: "reason_block", ActionID: "reason_value", Label: "탈퇴 사유", SummaryLabel: "- 탈퇴 사유"},
		},
	},
	{
		ActionID:     "open_company_info_modal",
		CallbackID:   "company_info_form_submit",
		ButtonLabel:  "회사/URL 정보 수정",
		Title:        "회사/서비스/URL 수정",
		Category:     domain.Category{Base: domain.CategoryHomepage},
		SummaryTitle: "[회사/서비스/URL 수정 요청]",
		Fields: []Field{
			{BlockID: "which_block", ActionID: "which_info", Label: "수정하려는 항목 (회사명/URL 등)", SummaryLabel: "- 수정 항목"},
			{BlockID: "content_block", ActionID: "desired_content", Label: "수정 내용 (어떻게 바꾸고 싶은지)", SummaryLabel: "- 변경 내용"},
		},
	},
}
