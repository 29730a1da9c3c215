package sqlinline

const QStatsSummary = `--sql cbeb92b3-9900-407a-8a72-9dde6d4b01d3
select
    (select count(*) from users)                                as total_users,
    (select count(*) from goals where status = 'active')        as active_goals,
    (select count(*) from checkins where day = current_date)    as checkins_today,
    (select count(*) from checkins)                             as checkins_total;
`
